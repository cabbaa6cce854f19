package handler

import (
	"net/http"
	"time"

	"thinklie-backend/internal/domain/chat"
	"thinklie-backend/internal/services"
	"thinklie-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles chat and message HTTP endpoints.
type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Create handles POST /chats.
func (h *ChatHandler) Create(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	// Title is optional; an empty body is a valid create.
	var req httpdto.CreateChatRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
			return
		}
	}

	created, err := h.service.CreateChat(c.Request.Context(), userID, req.Title)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"chat": toChatDTO(created)}))
}

// List handles GET /chats.
func (h *ChatHandler) List(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	chats, err := h.service.ListChats(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.ChatDTO, len(chats))
	for i, ch := range chats {
		dtos[i] = toChatDTO(ch)
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ChatsResponse{Chats: dtos}))
}

// Messages handles GET /chats/:chat_id/messages.
func (h *ChatHandler) Messages(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	chatID, err := uuid.Parse(c.Param("chat_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid chat id", "INVALID_REQUEST"))
		return
	}

	messages, err := h.service.GetMessages(c.Request.Context(), chatID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = toMessageDTO(m)
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.MessagesResponse{Messages: dtos}))
}

// SendMessage handles POST /chats/:chat_id/message.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	chatID, err := uuid.Parse(c.Param("chat_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid chat id", "INVALID_REQUEST"))
		return
	}

	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	reply, err := h.service.SendMessage(c.Request.Context(), chatID, userID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.SendMessageResponse{
		Reply:   reply.Content,
		Message: toMessageDTO(reply),
	}))
}

// Delete handles DELETE /chats/:chat_id.
func (h *ChatHandler) Delete(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	chatID, err := uuid.Parse(c.Param("chat_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid chat id", "INVALID_REQUEST"))
		return
	}

	if err := h.service.DeleteChat(c.Request.Context(), chatID, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}

func toChatDTO(ch chat.Chat) httpdto.ChatDTO {
	dto := httpdto.ChatDTO{
		ID:        ch.ID.String(),
		CreatedAt: ch.CreatedAt.Format(time.RFC3339),
	}
	if ch.Title.Valid {
		dto.Title = ch.Title.String
	}
	return dto
}

func toMessageDTO(m chat.Message) httpdto.MessageDTO {
	return httpdto.MessageDTO{
		ID:        m.ID.String(),
		ChatID:    m.ChatID.String(),
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
