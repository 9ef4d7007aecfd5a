package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"

	"tasksaathi/backend/storage"
	"tasksaathi/backend/types"
)

func (s *Store) CreateTask(task types.Task) (types.Task, error) {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	created := []types.Task{task}
	resp, _, err := s.client.From("tasks").Insert(created, false, "", "", "").Execute()
	if err != nil {
		return types.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Task{}, fmt.Errorf("failed to decode created task: %w", err)
	}
	if len(created) == 0 {
		return types.Task{}, fmt.Errorf("insert returned no task")
	}
	return created[0], nil
}

func (s *Store) ListTasks(userID, status string) ([]types.Task, error) {
	query := s.client.From("tasks").
		Select("*", "", false).
		Eq("user_id", userID)

	switch status {
	case storage.StatusPending:
		query = query.Eq("completed", "false")
	case storage.StatusCompleted:
		query = query.Eq("completed", "true")
	}

	resp, _, err := query.
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, err
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task data: %w", err)
	}
	return tasks, nil
}

func (s *Store) GetTask(userID, taskID string) (types.Task, error) {
	resp, _, err := s.client.From("tasks").
		Select("*", "", false).
		Eq("id", taskID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return types.Task{}, err
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return types.Task{}, fmt.Errorf("failed to decode task data: %w", err)
	}
	if len(tasks) == 0 {
		return types.Task{}, storage.ErrNotFound
	}
	return tasks[0], nil
}

func (s *Store) UpdateTask(userID, taskID string, updates map[string]interface{}) (types.Task, error) {
	resp, _, err := s.client.From("tasks").
		Update(updates, "", "").
		Eq("id", taskID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return types.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	var updated []types.Task
	if err := json.Unmarshal(resp, &updated); err != nil {
		return types.Task{}, fmt.Errorf("failed to parse update result: %w", err)
	}
	if len(updated) == 0 {
		return types.Task{}, storage.ErrNotFound
	}
	return updated[0], nil
}

func (s *Store) DeleteTask(userID, taskID string) error {
	resp, _, err := s.client.From("tasks").
		Delete("", "").
		Eq("id", taskID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return err
	}

	var deleted []types.Task
	if err := json.Unmarshal(resp, &deleted); err != nil {
		return fmt.Errorf("failed to parse delete result: %w", err)
	}
	if len(deleted) == 0 {
		return storage.ErrNotFound
	}
	return nil
}
