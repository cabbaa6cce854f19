package repository

import (
	"context"
	"errors"

	"thinklie-backend/internal/domain/project"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p *project.Project) error {
	res := r.db.WithContext(ctx).Create(p)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return thinklie_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

// CreateMany inserts the projects in a single statement.
func (r *PostgresProjectRepository) CreateMany(ctx context.Context, ps []project.Project) error {
	if len(ps) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Create(&ps)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return thinklie_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresProjectRepository) GetUserProjects(ctx context.Context, userID uuid.UUID) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *PostgresProjectRepository) DeleteForUser(ctx context.Context, projectID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&project.Project{}, "id = ? AND user_id = ?", projectID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return thinklie_errors.ErrNotFound
	}
	return nil
}
