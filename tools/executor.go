// Package tools implements the task operations behind both the chat
// pipeline and the REST handlers. Every operation returns a normalized
// ToolResult; unexpected storage failures are degraded to an Internal
// outcome with a readable message instead of a raw error.
package tools

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tasksaathi/backend/storage"
	"tasksaathi/backend/types"
)

type Executor struct {
	store storage.Store
}

func NewExecutor(store storage.Store) *Executor {
	return &Executor{store: store}
}

type AddTaskInput struct {
	Title       string
	Description string
	Priority    string // blank defaults to medium
	DueDate     string // ISO-8601, silently dropped when malformed
	Recurrence  string
	Tags        string
	ReminderAt  *time.Time
}

func (e *Executor) AddTask(userID string, in AddTaskInput) types.ToolResult {
	exists, err := e.store.UserExists(userID)
	if err != nil {
		return internalResult("add", err)
	}
	if !exists {
		return types.ToolResult{
			Outcome: types.OutcomeNotFound,
			Message: fmt.Sprintf("User %s not found", userID),
		}
	}

	priority := strings.ToLower(strings.TrimSpace(in.Priority))
	if priority == "" {
		priority = types.PriorityMedium
	}

	task := types.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Recurrence:  in.Recurrence,
		Tags:        in.Tags,
		ReminderAt:  in.ReminderAt,
	}

	// A malformed due date is ignored, not rejected: the chat interface
	// stays forgiving.
	if in.DueDate != "" {
		if due, err := parseDueDate(in.DueDate); err == nil {
			task.DueDate = &due
		}
	}

	created, err := e.store.CreateTask(task)
	if err != nil {
		return internalResult("add", err)
	}

	return types.ToolResult{
		Outcome: types.OutcomeSuccess,
		TaskID:  created.ID,
		Title:   created.Title,
		Message: fmt.Sprintf("✅ Task added: %s", created.Title),
	}
}

func (e *Executor) ListTasks(userID, status string) types.ToolResult {
	if status == "" {
		status = storage.StatusAll
	}

	tasks, err := e.store.ListTasks(userID, status)
	if err != nil {
		return internalResult("list", err)
	}

	summaries := make([]types.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, types.TaskSummary{
			TaskID:    t.ID,
			Title:     t.Title,
			Completed: t.Completed,
			Priority:  t.Priority,
			DueDate:   t.DueDate,
			CreatedAt: t.CreatedAt,
		})
	}

	return types.ToolResult{Outcome: types.OutcomeSuccess, Tasks: summaries}
}

func (e *Executor) CompleteTask(userID, taskID string) types.ToolResult {
	updated, err := e.store.UpdateTask(userID, taskID, map[string]interface{}{
		"completed": true,
	})
	if errors.Is(err, storage.ErrNotFound) {
		return notFoundResult(taskID)
	}
	if err != nil {
		return internalResult("complete", err)
	}

	return types.ToolResult{
		Outcome: types.OutcomeSuccess,
		TaskID:  updated.ID,
		Title:   updated.Title,
		Message: fmt.Sprintf("✅ Marked '%s' as completed", updated.Title),
	}
}

func (e *Executor) DeleteTask(userID, taskID string) types.ToolResult {
	task, err := e.store.GetTask(userID, taskID)
	if errors.Is(err, storage.ErrNotFound) {
		return notFoundResult(taskID)
	}
	if err != nil {
		return internalResult("delete", err)
	}

	if err := e.store.DeleteTask(userID, taskID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFoundResult(taskID)
		}
		return internalResult("delete", err)
	}

	return types.ToolResult{
		Outcome: types.OutcomeSuccess,
		TaskID:  taskID,
		Title:   task.Title,
		Message: fmt.Sprintf("🗑️ Deleted task: %s", task.Title),
	}
}

// UpdateTask applies a partial update. It is reachable from the REST
// surface only, never from the chat pipeline.
func (e *Executor) UpdateTask(userID, taskID string, updates map[string]interface{}) types.ToolResult {
	if due, ok := updates["due_date"].(string); ok {
		if parsed, err := parseDueDate(due); err == nil {
			updates["due_date"] = parsed
		} else {
			delete(updates, "due_date")
		}
	}
	if priority, ok := updates["priority"].(string); ok {
		updates["priority"] = strings.ToLower(priority)
	}

	updated, err := e.store.UpdateTask(userID, taskID, updates)
	if errors.Is(err, storage.ErrNotFound) {
		return notFoundResult(taskID)
	}
	if err != nil {
		return internalResult("update", err)
	}

	return types.ToolResult{
		Outcome: types.OutcomeSuccess,
		TaskID:  updated.ID,
		Title:   updated.Title,
		Message: fmt.Sprintf("📝 Updated task: %s", updated.Title),
	}
}

// parseDueDate accepts a full RFC 3339 timestamp or a bare calendar date.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func notFoundResult(taskID string) types.ToolResult {
	return types.ToolResult{
		Outcome: types.OutcomeNotFound,
		Message: fmt.Sprintf("Task not found: %s", taskID),
	}
}

func internalResult(action string, err error) types.ToolResult {
	return types.ToolResult{
		Outcome: types.OutcomeInternal,
		Message: fmt.Sprintf("Failed to %s task: %v", action, err),
	}
}
