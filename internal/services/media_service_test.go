package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"thinklie-backend/internal/domain/project"
	"thinklie-backend/internal/repository"
	"thinklie-backend/internal/storage"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMediaService(t *testing.T) *MediaService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&project.MediaObject{}))

	// Presigning is local signing work; no object store is contacted.
	store, err := storage.NewClient(context.Background(), storage.S3Config{
		Region:     "us-east-1",
		Bucket:     "test-bucket",
		AccessKey:  "test-access",
		SecretKey:  "test-secret",
		Endpoint:   "http://localhost:9000",
		PublicBase: "https://cdn.example.com",
	})
	require.NoError(t, err)

	return NewMediaService(repository.NewMediaRepository(db), store)
}

func TestCreatePresignedUpload(t *testing.T) {
	svc := newMediaService(t)
	ctx := context.Background()
	userID := uuid.New()

	res, err := svc.CreatePresignedUpload(ctx, PresignInput{
		UserID:      userID,
		FileName:    "photo.JPG",
		ContentType: "image/jpeg",
		FileSize:    1024,
	})
	require.NoError(t, err)

	assert.Equal(t, project.MediaImage, res.Media.Type)
	assert.Equal(t, project.MediaPending, res.Media.Status)
	assert.True(t, strings.HasPrefix(res.Media.ObjectKey, "uploads/"+userID.String()+"/"))
	assert.True(t, strings.HasSuffix(res.Media.ObjectKey, ".jpg"))
	assert.Contains(t, res.UploadURL, "test-bucket")
	assert.Equal(t, "image/jpeg", res.Headers["Content-Type"])

	listed, err := svc.ListUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestCreatePresignedUploadValidation(t *testing.T) {
	svc := newMediaService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.CreatePresignedUpload(ctx, PresignInput{
		UserID: userID, FileName: "notes.txt", ContentType: "text/plain", FileSize: 10,
	})
	assert.ErrorIs(t, err, thinklie_errors.ErrInvalidInput)

	_, err = svc.CreatePresignedUpload(ctx, PresignInput{
		UserID: userID, FileName: "huge.mp4", ContentType: "video/mp4", FileSize: maxMediaBytes + 1,
	})
	assert.ErrorIs(t, err, thinklie_errors.ErrTooLarge)

	_, err = svc.CreatePresignedUpload(ctx, PresignInput{
		UserID: userID, FileName: "", ContentType: "image/png", FileSize: 10,
	})
	assert.ErrorIs(t, err, thinklie_errors.ErrInvalidInput)

	unconfigured := NewMediaService(nil, nil)
	_, err = unconfigured.CreatePresignedUpload(ctx, PresignInput{
		UserID: userID, FileName: "a.png", ContentType: "image/png", FileSize: 10,
	})
	assert.ErrorIs(t, err, thinklie_errors.ErrUpstream)
}

func TestMarkUploaded(t *testing.T) {
	svc := newMediaService(t)
	ctx := context.Background()
	userID := uuid.New()

	res, err := svc.CreatePresignedUpload(ctx, PresignInput{
		UserID: userID, FileName: "clip.mp4", ContentType: "video/mp4", FileSize: 2048,
	})
	require.NoError(t, err)

	// A different user cannot complete someone else's upload.
	_, err = svc.MarkUploaded(ctx, res.Media.ID, uuid.New())
	assert.ErrorIs(t, err, thinklie_errors.ErrNotFound)

	m, err := svc.MarkUploaded(ctx, res.Media.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, project.MediaUploaded, m.Status)
	assert.Equal(t, "https://cdn.example.com/"+res.Media.ObjectKey, m.URL.String)

	// Completing twice is a no-op.
	again, err := svc.MarkUploaded(ctx, res.Media.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, project.MediaUploaded, again.Status)
}

func TestMediaDeleteScopedToOwner(t *testing.T) {
	svc := newMediaService(t)
	ctx := context.Background()
	userID := uuid.New()

	res, err := svc.CreatePresignedUpload(ctx, PresignInput{
		UserID: userID, FileName: "pic.png", ContentType: "image/png", FileSize: 64,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, res.Media.ID, uuid.New()), thinklie_errors.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, res.Media.ID, userID))

	listed, err := svc.ListUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
