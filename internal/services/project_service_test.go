package services

import (
	"context"
	"fmt"
	"testing"

	"thinklie-backend/internal/domain/project"
	"thinklie-backend/internal/repository"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newProjectService(t *testing.T) *ProjectService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&project.Project{}))
	return NewProjectService(repository.NewProjectRepository(db))
}

func TestMigrateSkipsBlankEntries(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()
	userID := uuid.New()

	count, err := svc.Migrate(ctx, userID, []ProjectInput{
		{Text: "kept one", Title: "a"},
		{Text: "   "},
		{Text: "kept two", Link: "https://example.com"},
		{},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	listed, err := svc.ListUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestMigrateEmptyBatch(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	count, err := svc.Migrate(ctx, uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = svc.Migrate(ctx, uuid.Nil, []ProjectInput{{Text: "x"}})
	assert.ErrorIs(t, err, thinklie_errors.ErrInvalidInput)
}
