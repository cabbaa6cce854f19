package handler

import (
	"fmt"
	"net/http"
	"time"

	"thinklie-backend/internal/domain/project"
	"thinklie-backend/internal/services"
	"thinklie-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /user/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, services.ProjectInput{
		Text:  req.Text,
		Title: req.Title,
		Link:  req.Link,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toProjectDTO(created)))
}

// Migrate handles POST /user/migrate. The body is a bare array of project
// payloads, matching what the web client stored in localStorage before the
// user had an account.
func (h *ProjectHandler) Migrate(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var reqs []httpdto.CreateProjectRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	inputs := make([]services.ProjectInput, len(reqs))
	for i, req := range reqs {
		inputs[i] = services.ProjectInput{Text: req.Text, Title: req.Title, Link: req.Link}
	}

	count, err := h.service.Migrate(c.Request.Context(), userID, inputs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.MigrateResponse{
		Migrated: count,
		Message:  fmt.Sprintf("Migrated %d projects successfully", count),
	}))
}

// List handles GET /user/projects.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	projects, err := h.service.ListUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = toProjectDTO(p)
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ProjectsResponse{Projects: dtos}))
}

// Delete handles DELETE /user/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid project id", "INVALID_REQUEST"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), projectID, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}

func toProjectDTO(p project.Project) httpdto.ProjectDTO {
	dto := httpdto.ProjectDTO{
		ID:        p.ID.String(),
		Text:      p.Text,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Title.Valid {
		dto.Title = p.Title.String
	}
	if p.Link.Valid {
		dto.Link = p.Link.String
	}
	return dto
}
