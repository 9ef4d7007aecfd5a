package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tasksaathi/backend/config"
	"tasksaathi/backend/storage"
	"tasksaathi/backend/supabase"
	"tasksaathi/backend/tools"
	"tasksaathi/backend/types"
)

func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Priority    string     `json:"priority"`
		DueDate     string     `json:"due_date"`
		Recurrence  string     `json:"recurrence"`
		Tags        string     `json:"tags"`
		ReminderAt  *time.Time `json:"reminder_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.Logger.Error("Failed to decode task JSON:", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	// Basic validation
	if body.Title == "" {
		writeError(w, "Missing title", http.StatusBadRequest)
		return
	}

	store, userID, err := supabase.StoreFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	executor := tools.NewExecutor(store)
	result := executor.AddTask(userID, tools.AddTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
		Recurrence:  body.Recurrence,
		Tags:        body.Tags,
		ReminderAt:  body.ReminderAt,
	})
	if !result.OK() {
		config.Logger.Error("Failed to save task:", result.Message)
		writeError(w, result.Message, statusForOutcome(result.Outcome))
		return
	}

	task, err := store.GetTask(userID, result.TaskID)
	if err != nil {
		config.Logger.Error("Failed to fetch created task:", err)
		writeError(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}

func GetTasksHandler(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	store, userID, err := supabase.StoreFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result := tools.NewExecutor(store).ListTasks(userID, status)
	if !result.OK() {
		config.Logger.Error("Failed to fetch tasks:", result.Message)
		writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetTasksResponse{
		Success: true,
		Tasks:   result.Tasks,
		Total:   len(result.Tasks),
	})
}

// get a single task by ID
func GetSingleTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	store, userID, err := supabase.StoreFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	task, err := store.GetTask(userID, taskID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		config.Logger.Error("Failed to fetch task:", err)
		writeError(w, "Failed to fetch task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetSingleTaskResponse{
		Success: true,
		Task:    task,
	})
}

func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(taskID); err != nil {
		config.Logger.Error("Invalid task ID format:", err)
		writeError(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil || len(updates) == 0 {
		config.Logger.Error("Failed to decode update JSON:", err)
		writeError(w, "Invalid or empty update payload", http.StatusBadRequest)
		return
	}

	store, userID, err := supabase.StoreFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	completed, _ := updates["completed"].(bool)

	result := tools.NewExecutor(store).UpdateTask(userID, taskID, updates)
	if !result.OK() {
		config.Logger.Error("Failed to update task:", result.Message)
		writeError(w, result.Message, statusForOutcome(result.Outcome))
		return
	}

	// Completing a task notifies the recurrence trigger; delivery failures
	// never fail the update.
	if completed {
		Publisher.Publish(types.TaskLifecycleEvent{
			Type:      config.EventTaskUpdated,
			UserID:    userID,
			TaskID:    taskID,
			Completed: true,
		})
	}

	task, err := store.GetTask(userID, taskID)
	if err != nil {
		config.Logger.Error("Failed to fetch updated task:", err)
		writeError(w, "Failed to update task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}

func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	store, userID, err := supabase.StoreFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result := tools.NewExecutor(store).DeleteTask(userID, taskID)
	if !result.OK() {
		config.Logger.Error("Failed to delete task:", result.Message)
		writeError(w, result.Message, statusForOutcome(result.Outcome))
		return
	}

	writeJSON(w, http.StatusOK, types.DeleteTaskResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}
