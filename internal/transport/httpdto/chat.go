package httpdto

// CreateChatRequest is used for POST /chats
type CreateChatRequest struct {
	Title string `json:"title,omitempty"`
}

// SendMessageRequest is used for POST /chats/:chat_id/message
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatDTO represents a chat in API responses
type ChatDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	CreatedAt string `json:"created_at"`
}

// MessageDTO represents one chat turn in API responses
type MessageDTO struct {
	ID        string `json:"id"`
	ChatID    string `json:"chat_id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ChatsResponse is returned when listing chats
type ChatsResponse struct {
	Chats []ChatDTO `json:"chats"`
}

// MessagesResponse is returned when fetching a transcript
type MessagesResponse struct {
	Messages []MessageDTO `json:"messages"`
}

// SendMessageResponse is returned after a completed chat turn
type SendMessageResponse struct {
	Reply   string     `json:"reply"`
	Message MessageDTO `json:"message"`
}
