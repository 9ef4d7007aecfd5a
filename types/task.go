package types

import "time"

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Recurrence rules
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

type Task struct {
	ID          string     `json:"id,omitempty"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"` // low | medium | high
	DueDate     *time.Time `json:"due_date,omitempty"`
	Recurrence  string     `json:"recurrence,omitempty"` // none | daily | weekly | monthly
	Tags        string     `json:"tags,omitempty"`
	ReminderAt  *time.Time `json:"reminder_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
}

// TaskSummary is the projection returned by list_tasks and rendered in chat
// replies.
type TaskSummary struct {
	TaskID    string     `json:"task_id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type TaskResponse struct {
	Success      bool   `json:"success"`
	Task         Task   `json:"task,omitempty"`  // the created/updated task
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}

type DeleteTaskResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`   // only set on failure
	Message      string `json:"message,omitempty"` // confirmation message
}

type GetTasksResponse struct {
	Success      bool          `json:"success"`
	Tasks        []TaskSummary `json:"tasks,omitempty"`
	Total        int           `json:"total,omitempty"`
	ErrorMessage string        `json:"error,omitempty"` // Only set on failure
}

type GetSingleTaskResponse struct {
	Success      bool   `json:"success"`
	Task         Task   `json:"task,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}
