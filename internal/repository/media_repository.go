package repository

import (
	"context"
	"errors"

	"thinklie-backend/internal/domain/project"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresMediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &PostgresMediaRepository{db: db}
}

func (r *PostgresMediaRepository) Create(ctx context.Context, m *project.MediaObject) error {
	res := r.db.WithContext(ctx).Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return thinklie_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresMediaRepository) GetByID(ctx context.Context, id uuid.UUID) (project.MediaObject, error) {
	var m project.MediaObject
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project.MediaObject{}, thinklie_errors.ErrNotFound
		}
		return project.MediaObject{}, err
	}
	return m, nil
}

func (r *PostgresMediaRepository) GetUserMedia(ctx context.Context, userID uuid.UUID) ([]project.MediaObject, error) {
	var media []project.MediaObject
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

func (r *PostgresMediaRepository) Update(ctx context.Context, m project.MediaObject) error {
	res := r.db.WithContext(ctx).Save(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return thinklie_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresMediaRepository) DeleteForUser(ctx context.Context, mediaID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&project.MediaObject{}, "id = ? AND user_id = ?", mediaID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return thinklie_errors.ErrNotFound
	}
	return nil
}
