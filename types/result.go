package types

// ToolOutcome classifies how a task operation ended.
type ToolOutcome string

const (
	OutcomeSuccess  ToolOutcome = "success"
	OutcomeNotFound ToolOutcome = "not_found"
	OutcomeInvalid  ToolOutcome = "invalid"
	OutcomeInternal ToolOutcome = "error"
)

// ToolResult is the normalized record produced by every task operation and
// consumed by the response renderer. It is never persisted.
type ToolResult struct {
	Outcome ToolOutcome   `json:"status"`
	TaskID  string        `json:"task_id,omitempty"`
	Title   string        `json:"title,omitempty"`
	Message string        `json:"message,omitempty"` // human-readable, safe to render
	Tasks   []TaskSummary `json:"tasks,omitempty"`
}

func (r ToolResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}
