package handler

import (
	"net/http"
	"time"

	"thinklie-backend/internal/domain/project"
	"thinklie-backend/internal/services"
	"thinklie-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct {
	service *services.MediaService
}

func NewMediaHandler(service *services.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// Create handles POST /user/media: registers the object and returns a
// presigned PUT URL for the client to upload to.
func (h *MediaHandler) Create(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	res, err := h.service.CreatePresignedUpload(c.Request.Context(), services.PresignInput{
		UserID:      userID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		FileSize:    req.FileSize,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.CreateMediaResponse{
		Media:     toMediaDTO(res.Media),
		UploadURL: res.UploadURL,
		Headers:   res.Headers,
	}))
}

// Complete handles POST /user/media/:id/complete.
func (h *MediaHandler) Complete(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	mediaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid media id", "INVALID_REQUEST"))
		return
	}

	m, err := h.service.MarkUploaded(c.Request.Context(), mediaID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toMediaDTO(m)))
}

// List handles GET /user/media.
func (h *MediaHandler) List(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	media, err := h.service.ListUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.MediaDTO, len(media))
	for i, m := range media {
		dtos[i] = toMediaDTO(m)
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.MediaListResponse{Media: dtos}))
}

// Delete handles DELETE /user/media/:id.
func (h *MediaHandler) Delete(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	mediaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid media id", "INVALID_REQUEST"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), mediaID, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}

func toMediaDTO(m project.MediaObject) httpdto.MediaDTO {
	dto := httpdto.MediaDTO{
		ID:        m.ID.String(),
		Type:      m.Type,
		Filename:  m.Filename,
		MimeType:  m.MimeType,
		Size:      m.SizeBytes,
		Status:    m.Status,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.URL.Valid {
		dto.URL = m.URL.String
	}
	return dto
}
