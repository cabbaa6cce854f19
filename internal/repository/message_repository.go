package repository

import (
	"context"
	"errors"

	"thinklie-backend/internal/domain/chat"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Create persists one turn. Rows are write-once, so the role is checked here
// rather than by a DB constraint.
func (r *PostgresMessageRepository) Create(ctx context.Context, m *chat.Message) error {
	if !chat.ValidRole(m.Role) {
		return thinklie_errors.ErrInvalidInput
	}
	res := r.db.WithContext(ctx).Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return thinklie_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

// GetChatMessages returns the full transcript, oldest first. Ordering is
// created_at only; concurrent sends may interleave and that is accepted.
func (r *PostgresMessageRepository) GetChatMessages(ctx context.Context, chatID uuid.UUID) ([]chat.Message, error) {
	var messages []chat.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
