package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"thinklie-backend/internal/domain/chat"
	"thinklie-backend/internal/llm"
	"thinklie-backend/internal/repository"
	thinklie_errors "thinklie-backend/pkg/errors"
	"thinklie-backend/pkg/logger"

	"github.com/google/uuid"
)

const defaultChatTitle = "New Chat"

// ChatService orchestrates a chat turn: persist the user message, assemble
// context, ask the model, persist and return the reply.
type ChatService struct {
	chats    repository.ChatRepository
	messages repository.MessageRepository
	llm      llm.Completer
	logger   *logger.Logger
}

func NewChatService(chats repository.ChatRepository, messages repository.MessageRepository, completer llm.Completer, l *logger.Logger) *ChatService {
	return &ChatService{chats: chats, messages: messages, llm: completer, logger: l}
}

func (s *ChatService) CreateChat(ctx context.Context, userID uuid.UUID, title string) (chat.Chat, error) {
	if userID == uuid.Nil {
		return chat.Chat{}, thinklie_errors.ErrInvalidInput
	}
	if strings.TrimSpace(title) == "" {
		title = defaultChatTitle
	}

	c := chat.Chat{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     sql.NullString{String: title, Valid: true},
		CreatedAt: time.Now(),
	}
	if err := s.chats.Create(ctx, &c); err != nil {
		return chat.Chat{}, err
	}
	return c, nil
}

func (s *ChatService) ListChats(ctx context.Context, userID uuid.UUID) ([]chat.Chat, error) {
	return s.chats.GetUserChats(ctx, userID)
}

// GetMessages returns the transcript oldest-first. The chat is resolved
// owner-scoped first, so another user's chat reads as not found.
func (s *ChatService) GetMessages(ctx context.Context, chatID, userID uuid.UUID) ([]chat.Message, error) {
	if _, err := s.chats.GetForUser(ctx, chatID, userID); err != nil {
		return nil, err
	}
	return s.messages.GetChatMessages(ctx, chatID)
}

// SendMessage appends the user's turn, calls the model with the full history
// and appends the reply. There is no transaction across the model call: if
// the completion fails the stored user message stays put, so a retry sends
// the same context again instead of losing the turn.
func (s *ChatService) SendMessage(ctx context.Context, chatID, userID uuid.UUID, content string) (chat.Message, error) {
	if strings.TrimSpace(content) == "" {
		return chat.Message{}, thinklie_errors.ErrInvalidInput
	}

	if _, err := s.chats.GetForUser(ctx, chatID, userID); err != nil {
		return chat.Message{}, err
	}

	userMsg := chat.Message{
		ID:        uuid.New(),
		ChatID:    chatID,
		UserID:    userID,
		Role:      chat.RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, &userMsg); err != nil {
		return chat.Message{}, err
	}

	history, err := s.messages.GetChatMessages(ctx, chatID)
	if err != nil {
		return chat.Message{}, err
	}

	turns := make([]llm.Turn, len(history))
	for i, m := range history {
		turns[i] = llm.Turn{Role: m.Role, Content: m.Content}
	}

	reply, err := s.llm.Complete(ctx, turns)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorfCtx(ctx, "completion failed for chat %s: %s", chatID, err)
		}
		return chat.Message{}, err
	}

	assistantMsg := chat.Message{
		ID:        uuid.New(),
		ChatID:    chatID,
		UserID:    userID,
		Role:      chat.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, &assistantMsg); err != nil {
		return chat.Message{}, err
	}

	return assistantMsg, nil
}

func (s *ChatService) DeleteChat(ctx context.Context, chatID, userID uuid.UUID) error {
	if _, err := s.chats.GetForUser(ctx, chatID, userID); err != nil {
		return err
	}
	return s.chats.Delete(ctx, chatID)
}
