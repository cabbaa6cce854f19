package services

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"strings"
	"time"

	"thinklie-backend/internal/domain/project"
	"thinklie-backend/internal/repository"
	"thinklie-backend/internal/storage"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
)

// maxMediaBytes caps uploads at 100 MiB.
const maxMediaBytes = 100 << 20

var allowedMediaTypes = map[string]string{
	"image/jpeg":      project.MediaImage,
	"image/png":       project.MediaImage,
	"image/gif":       project.MediaImage,
	"image/webp":      project.MediaImage,
	"video/mp4":       project.MediaVideo,
	"video/webm":      project.MediaVideo,
	"video/quicktime": project.MediaVideo,
}

// MediaService tracks user media rows and hands out presigned PUT URLs for
// the object store. The bytes never pass through this backend.
type MediaService struct {
	repo    repository.MediaRepository
	storage *storage.Client
}

type PresignInput struct {
	UserID      uuid.UUID
	FileName    string
	ContentType string
	FileSize    int64
}

type PresignResult struct {
	Media     project.MediaObject
	UploadURL string
	Headers   map[string]string
}

func NewMediaService(repo repository.MediaRepository, storage *storage.Client) *MediaService {
	return &MediaService{repo: repo, storage: storage}
}

func (s *MediaService) CreatePresignedUpload(ctx context.Context, in PresignInput) (PresignResult, error) {
	if s.storage == nil {
		return PresignResult{}, fmt.Errorf("%w: media storage is not configured", thinklie_errors.ErrUpstream)
	}
	if in.UserID == uuid.Nil || in.FileName == "" || in.FileSize <= 0 {
		return PresignResult{}, thinklie_errors.ErrInvalidInput
	}
	if in.FileSize > maxMediaBytes {
		return PresignResult{}, thinklie_errors.ErrTooLarge
	}
	mediaType, ok := allowedMediaTypes[in.ContentType]
	if !ok {
		return PresignResult{}, thinklie_errors.ErrInvalidInput
	}

	m := project.MediaObject{
		ID:        uuid.New(),
		UserID:    in.UserID,
		Type:      mediaType,
		Filename:  in.FileName,
		MimeType:  in.ContentType,
		SizeBytes: in.FileSize,
		Status:    project.MediaPending,
		CreatedAt: time.Now(),
	}
	m.ObjectKey = buildObjectKey(m)

	uploadURL, headers, err := s.storage.PresignPut(ctx, m.ObjectKey, in.ContentType, in.FileSize)
	if err != nil {
		return PresignResult{}, fmt.Errorf("%w: %v", thinklie_errors.ErrUpstream, err)
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return PresignResult{}, err
	}

	return PresignResult{Media: m, UploadURL: uploadURL, Headers: headers}, nil
}

// MarkUploaded records that the client finished the presigned PUT and fills
// in the public URL.
func (s *MediaService) MarkUploaded(ctx context.Context, mediaID, userID uuid.UUID) (project.MediaObject, error) {
	m, err := s.repo.GetByID(ctx, mediaID)
	if err != nil {
		return project.MediaObject{}, err
	}
	if m.UserID != userID {
		return project.MediaObject{}, thinklie_errors.ErrNotFound
	}
	if m.Status == project.MediaUploaded {
		return m, nil
	}

	if s.storage != nil {
		if url := s.storage.FileURL(m.ObjectKey); url != "" {
			m.URL = sql.NullString{String: url, Valid: true}
		}
	}
	m.Status = project.MediaUploaded

	if err := s.repo.Update(ctx, m); err != nil {
		return project.MediaObject{}, err
	}
	return m, nil
}

func (s *MediaService) ListUser(ctx context.Context, userID uuid.UUID) ([]project.MediaObject, error) {
	return s.repo.GetUserMedia(ctx, userID)
}

func (s *MediaService) Delete(ctx context.Context, mediaID, userID uuid.UUID) error {
	return s.repo.DeleteForUser(ctx, mediaID, userID)
}

func buildObjectKey(m project.MediaObject) string {
	ext := strings.ToLower(path.Ext(m.Filename))
	base := fmt.Sprintf("uploads/%s/%s", m.UserID.String(), m.ID.String())
	if ext == "" {
		return base
	}
	return base + ext
}
