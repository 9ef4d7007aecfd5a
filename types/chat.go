package types

import (
	"time"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	ID             string    `json:"id,omitempty"`
	UserID         string    `json:"user_id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"` // user | assistant
	Content        string    `json:"content"`
	ToolCalls      []string  `json:"tool_calls,omitempty"` // nil when no tools ran
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type ChatResponse struct {
	Success        bool     `json:"success"`
	ConversationID string   `json:"conversation_id,omitempty"`
	MessageID      string   `json:"message_id,omitempty"`
	Response       string   `json:"response,omitempty"`
	ToolCalls      []string `json:"tool_calls,omitempty"` // absent when no tools ran
	ErrorMessage   string   `json:"error,omitempty"`      // only set on failure
}

type GetMessagesResponse struct {
	Success      bool      `json:"success"`
	Messages     []Message `json:"messages"`
	ErrorMessage string    `json:"error,omitempty"`
}
