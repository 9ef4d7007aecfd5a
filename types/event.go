package types

// TaskLifecycleEvent is the payload published on every task mutation and
// consumed by the recurrence trigger.
type TaskLifecycleEvent struct {
	Type      string `json:"type"` // task_created | task_updated | task_deleted
	UserID    string `json:"user_id"`
	TaskID    string `json:"task_id"`
	Completed bool   `json:"is_completed"`
}

// PubsubEvent is the envelope the pub/sub sidecar delivers to subscriber
// routes. ID is the broker-assigned event id used for deduplication; older
// publishers may omit it.
type PubsubEvent struct {
	ID   string             `json:"id,omitempty"`
	Data TaskLifecycleEvent `json:"data"`
}

// ReminderEvent is delivered on the reminders topic when a task's reminder
// timestamp fires.
type ReminderEvent struct {
	TaskID string `json:"task_id"`
	Title  string `json:"title"`
}

type ReminderPubsubEvent struct {
	ID   string        `json:"id,omitempty"`
	Data ReminderEvent `json:"data"`
}

// Subscription describes one pub/sub topic binding returned from
// /dapr/subscribe.
type Subscription struct {
	PubsubName string `json:"pubsubname"`
	Topic      string `json:"topic"`
	Route      string `json:"route"`
}
