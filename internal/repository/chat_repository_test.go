package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"thinklie-backend/internal/domain/chat"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&chat.Chat{}, &chat.Message{}))
	return db
}

func newChat(userID uuid.UUID, title string, createdAt time.Time) chat.Chat {
	return chat.Chat{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     sql.NullString{String: title, Valid: title != ""},
		CreatedAt: createdAt,
	}
}

func TestGetUserChatsOrderingAndOwnership(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	user1 := uuid.New()
	user2 := uuid.New()
	base := time.Now().Add(-time.Hour)

	older := newChat(user1, "older", base)
	newer := newChat(user1, "newer", base.Add(10*time.Minute))
	foreign := newChat(user2, "foreign", base.Add(5*time.Minute))

	require.NoError(t, repo.Create(ctx, &older))
	require.NoError(t, repo.Create(ctx, &newer))
	require.NoError(t, repo.Create(ctx, &foreign))

	chats, err := repo.GetUserChats(ctx, user1)
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, newer.ID, chats[0].ID)
	assert.Equal(t, older.ID, chats[1].ID)

	for _, c := range chats {
		assert.NotEqual(t, foreign.ID, c.ID)
	}
}

func TestGetForUserScopesToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()
	c := newChat(owner, "mine", time.Now())
	require.NoError(t, repo.Create(ctx, &c))

	got, err := repo.GetForUser(ctx, c.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = repo.GetForUser(ctx, c.ID, other)
	assert.ErrorIs(t, err, thinklie_errors.ErrNotFound)

	_, err = repo.GetForUser(ctx, uuid.New(), owner)
	assert.ErrorIs(t, err, thinklie_errors.ErrNotFound)
}

func TestGetChatMessagesOrderedAscending(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatRepository(db)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	c := newChat(userID, "", time.Now())
	require.NoError(t, chats.Create(ctx, &c))

	// Insert out of chronological order; the read side must sort.
	base := time.Now().Add(-time.Minute)
	for _, i := range []int{3, 0, 4, 2, 1} {
		m := chat.Message{
			ID:        uuid.New(),
			ChatID:    c.ID,
			UserID:    userID,
			Role:      chat.RoleUser,
			Content:   fmt.Sprintf("turn %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, messages.Create(ctx, &m))
	}

	got, err := messages.GetChatMessages(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, m := range got {
		assert.Equal(t, fmt.Sprintf("turn %d", i), m.Content)
	}
}

func TestCreateMessageRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatRepository(db)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	c := newChat(userID, "", time.Now())
	require.NoError(t, chats.Create(ctx, &c))

	m := chat.Message{
		ID:        uuid.New(),
		ChatID:    c.ID,
		UserID:    userID,
		Role:      "system",
		Content:   "nope",
		CreatedAt: time.Now(),
	}
	assert.ErrorIs(t, messages.Create(ctx, &m), thinklie_errors.ErrInvalidInput)

	m.Role = chat.RoleAssistant
	m.ID = uuid.New()
	require.NoError(t, messages.Create(ctx, &m))
}

func TestDeleteChatRemovesMessages(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatRepository(db)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	c := newChat(userID, "", time.Now())
	require.NoError(t, chats.Create(ctx, &c))

	m := chat.Message{
		ID:        uuid.New(),
		ChatID:    c.ID,
		UserID:    userID,
		Role:      chat.RoleUser,
		Content:   "hello",
		CreatedAt: time.Now(),
	}
	require.NoError(t, messages.Create(ctx, &m))

	require.NoError(t, chats.Delete(ctx, c.ID))

	_, err := chats.GetForUser(ctx, c.ID, userID)
	assert.ErrorIs(t, err, thinklie_errors.ErrNotFound)

	left, err := messages.GetChatMessages(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	assert.ErrorIs(t, chats.Delete(ctx, c.ID), thinklie_errors.ErrNotFound)
}
