package repository

import (
	"context"
	"errors"

	"thinklie-backend/internal/domain/chat"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	res := r.db.WithContext(ctx).Create(c)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return thinklie_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

// GetForUser resolves a chat scoped to its owner. A chat owned by a different
// user is indistinguishable from a missing one.
func (r *PostgresChatRepository) GetForUser(ctx context.Context, chatID, userID uuid.UUID) (chat.Chat, error) {
	var c chat.Chat
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", chatID, userID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat.Chat{}, thinklie_errors.ErrNotFound
		}
		return chat.Chat{}, err
	}
	return c, nil
}

func (r *PostgresChatRepository) GetUserChats(ctx context.Context, userID uuid.UUID) ([]chat.Chat, error) {
	var chats []chat.Chat
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

// Delete removes the chat and its messages in one transaction. The FK is
// declared ON DELETE CASCADE, but hosted schemas aren't always migrated with
// constraints intact, so messages are removed explicitly.
func (r *PostgresChatRepository) Delete(ctx context.Context, chatID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&chat.Message{}, "chat_id = ?", chatID).Error; err != nil {
			return err
		}
		res := tx.Delete(&chat.Chat{}, "id = ?", chatID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return thinklie_errors.ErrNotFound
		}
		return nil
	})
}
