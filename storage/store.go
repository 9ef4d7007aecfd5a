package storage

import (
	"errors"

	"tasksaathi/backend/types"
)

// Task status filters accepted by ListTasks.
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

var (
	// ErrNotFound is returned when a task or conversation does not exist
	// or is owned by a different user.
	ErrNotFound = errors.New("storage: not found")
	// ErrForbidden is returned when the caller is not allowed to touch the
	// record it referenced.
	ErrForbidden = errors.New("storage: forbidden")
)

// Store is the storage collaborator behind the chat pipeline, the REST
// handlers and the recurrence trigger. Implementations must return tasks
// and messages in ascending created_at order and conversations in
// descending updated_at order.
type Store interface {
	UserExists(userID string) (bool, error)

	CreateTask(task types.Task) (types.Task, error)
	ListTasks(userID, status string) ([]types.Task, error)
	GetTask(userID, taskID string) (types.Task, error)
	UpdateTask(userID, taskID string, updates map[string]interface{}) (types.Task, error)
	DeleteTask(userID, taskID string) error

	CreateConversation(userID, title string) (types.Conversation, error)
	GetConversation(userID, conversationID string) (types.Conversation, error)
	TouchConversation(userID, conversationID string) error
	ListConversations(userID string) ([]types.Conversation, error)

	SaveMessage(msg types.Message) (types.Message, error)
	ListMessages(userID, conversationID string) ([]types.Message, error)
}
