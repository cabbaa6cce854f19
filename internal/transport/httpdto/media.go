package httpdto

// CreateMediaRequest is used for POST /user/media
type CreateMediaRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	FileSize    int64  `json:"file_size" binding:"required"`
}

// CreateMediaResponse is returned with the presigned upload target
type CreateMediaResponse struct {
	Media     MediaDTO          `json:"media"`
	UploadURL string            `json:"upload_url"`
	Headers   map[string]string `json:"headers,omitempty"`
}

// MediaDTO represents a media object in API responses
type MediaDTO struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Filename  string `json:"filename"`
	URL       string `json:"url,omitempty"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// MediaListResponse is returned when listing media
type MediaListResponse struct {
	Media []MediaDTO `json:"media"`
}
