package types

import "time"

type Conversation struct {
	ID        string     `json:"id,omitempty"` // <-- omitempty is critical
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type GetConversationsResponse struct {
	Success       bool           `json:"success"`
	Conversations []Conversation `json:"conversations"`
	ErrorMessage  string         `json:"error,omitempty"`
}
