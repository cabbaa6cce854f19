package project

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Media upload statuses
const (
	MediaPending  = "PENDING"
	MediaUploaded = "UPLOADED"
)

// Media types
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Project represents the projects table
type Project struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	Title     sql.NullString `json:"-"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Link      sql.NullString `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// MediaObject represents the media_objects table. The binary itself lives in
// object storage under ObjectKey; rows only track ownership and metadata.
type MediaObject struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	Type      string         `gorm:"not null" json:"type"`
	Filename  string         `gorm:"not null" json:"filename"`
	ObjectKey string         `gorm:"not null" json:"-"`
	URL       sql.NullString `json:"-"`
	MimeType  string         `json:"mime_type"`
	SizeBytes int64          `json:"size"`
	Status    string         `gorm:"not null" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (MediaObject) TableName() string {
	return "media_objects"
}
