package config

// Pub/sub wiring constants
const (
	PubsubName         = "pubsub"
	TaskEventsTopic    = "task-events"
	RemindersTopic     = "reminders"
	TaskLifecycleRoute = "/dapr/events/task-lifecycle"
	RemindersRoute     = "/dapr/events/reminders"
)

// Task lifecycle event types
const (
	EventTaskCreated   = "task_created"
	EventTaskUpdated   = "task_updated"
	EventTaskCompleted = "task_completed"
	EventTaskDeleted   = "task_deleted"
)

// Default title given to a conversation created implicitly by the first
// chat turn.
const NewConversationTitle = "New Conversation"
