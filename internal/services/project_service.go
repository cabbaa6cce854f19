package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"thinklie-backend/internal/domain/project"
	"thinklie-backend/internal/repository"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
)

type ProjectService struct {
	repo repository.ProjectRepository
}

type ProjectInput struct {
	Text  string
	Title string
	Link  string
}

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, in ProjectInput) (project.Project, error) {
	if userID == uuid.Nil || strings.TrimSpace(in.Text) == "" {
		return project.Project{}, thinklie_errors.ErrInvalidInput
	}

	p := project.Project{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     toNullString(in.Title),
		Text:      in.Text,
		Link:      toNullString(in.Link),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// Migrate bulk-imports projects a client kept in local storage before it had
// an account. Entries without text are skipped rather than failing the batch;
// the count of created rows is returned.
func (s *ProjectService) Migrate(ctx context.Context, userID uuid.UUID, inputs []ProjectInput) (int, error) {
	if userID == uuid.Nil {
		return 0, thinklie_errors.ErrInvalidInput
	}

	now := time.Now()
	projects := make([]project.Project, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Text) == "" {
			continue
		}
		projects = append(projects, project.Project{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     toNullString(in.Title),
			Text:      in.Text,
			Link:      toNullString(in.Link),
			CreatedAt: now,
		})
	}

	if err := s.repo.CreateMany(ctx, projects); err != nil {
		return 0, err
	}
	return len(projects), nil
}

func (s *ProjectService) ListUser(ctx context.Context, userID uuid.UUID) ([]project.Project, error) {
	return s.repo.GetUserProjects(ctx, userID)
}

func (s *ProjectService) Delete(ctx context.Context, projectID, userID uuid.UUID) error {
	return s.repo.DeleteForUser(ctx, projectID, userID)
}

func toNullString(v string) sql.NullString {
	if strings.TrimSpace(v) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
