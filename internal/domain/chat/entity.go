package chat

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Message roles. Messages are written once and never edited.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chat represents the chats table. A chat belongs to exactly one user,
// identified by the subject claim of the auth provider's token.
type Chat struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	Title     sql.NullString `json:"-"`
	CreatedAt time.Time      `json:"created_at"`

	Messages []Message `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Message represents the messages table
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChatID    uuid.UUID `gorm:"type:uuid;index;not null" json:"chat_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Role      string    `gorm:"not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Chat) TableName() string {
	return "chats"
}

func (Message) TableName() string {
	return "messages"
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant
}
