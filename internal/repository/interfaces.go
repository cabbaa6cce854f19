package repository

import (
	"context"

	"github.com/google/uuid"

	"thinklie-backend/internal/domain/chat"
	"thinklie-backend/internal/domain/project"
)

type ChatRepository interface {
	Create(ctx context.Context, c *chat.Chat) error
	GetForUser(ctx context.Context, chatID, userID uuid.UUID) (chat.Chat, error)
	GetUserChats(ctx context.Context, userID uuid.UUID) ([]chat.Chat, error)
	Delete(ctx context.Context, chatID uuid.UUID) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *chat.Message) error
	GetChatMessages(ctx context.Context, chatID uuid.UUID) ([]chat.Message, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *project.Project) error
	CreateMany(ctx context.Context, ps []project.Project) error
	GetUserProjects(ctx context.Context, userID uuid.UUID) ([]project.Project, error)
	DeleteForUser(ctx context.Context, projectID, userID uuid.UUID) error
}

type MediaRepository interface {
	Create(ctx context.Context, m *project.MediaObject) error
	GetByID(ctx context.Context, id uuid.UUID) (project.MediaObject, error)
	GetUserMedia(ctx context.Context, userID uuid.UUID) ([]project.MediaObject, error)
	Update(ctx context.Context, m project.MediaObject) error
	DeleteForUser(ctx context.Context, mediaID, userID uuid.UUID) error
}
