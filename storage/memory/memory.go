// Package memory provides an in-memory Store used by tests. It mirrors the
// ordering guarantees of the production supabase store: tasks and messages
// ascending by creation, conversations descending by last update.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasksaathi/backend/storage"
	"tasksaathi/backend/types"
)

type Store struct {
	mu            sync.Mutex
	users         map[string]bool
	tasks         map[string]types.Task
	conversations map[string]types.Conversation
	messages      map[string]types.Message

	// monotonic tick so records created in the same wall-clock instant
	// still sort deterministically
	seq int64
}

func NewStore() *Store {
	return &Store{
		users:         make(map[string]bool),
		tasks:         make(map[string]types.Task),
		conversations: make(map[string]types.Conversation),
		messages:      make(map[string]types.Message),
	}
}

// AddUser registers a user id so that UserExists reports it.
func (s *Store) AddUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = true
}

func (s *Store) UserExists(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[userID], nil
}

func (s *Store) tick() time.Time {
	s.seq++
	return time.Now().UTC().Add(time.Duration(s.seq) * time.Microsecond)
}

func (s *Store) CreateTask(task types.Task) (types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.tick()
	}
	s.tasks[task.ID] = task
	return task, nil
}

func (s *Store) ListTasks(userID, status string) ([]types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []types.Task
	for _, t := range s.tasks {
		if t.UserID != userID {
			continue
		}
		switch status {
		case storage.StatusPending:
			if t.Completed {
				continue
			}
		case storage.StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetTask(userID, taskID string) (types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return types.Task{}, storage.ErrNotFound
	}
	return t, nil
}

func (s *Store) UpdateTask(userID, taskID string, updates map[string]interface{}) (types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return types.Task{}, storage.ErrNotFound
	}

	for key, value := range updates {
		switch key {
		case "title":
			if v, ok := value.(string); ok {
				t.Title = v
			}
		case "description":
			if v, ok := value.(string); ok {
				t.Description = v
			}
		case "priority":
			if v, ok := value.(string); ok {
				t.Priority = v
			}
		case "completed":
			if v, ok := value.(bool); ok {
				t.Completed = v
			}
		case "due_date":
			switch v := value.(type) {
			case *time.Time:
				t.DueDate = v
			case time.Time:
				t.DueDate = &v
			case nil:
				t.DueDate = nil
			}
		case "recurrence":
			if v, ok := value.(string); ok {
				t.Recurrence = v
			}
		case "tags":
			if v, ok := value.(string); ok {
				t.Tags = v
			}
		}
	}

	s.tasks[taskID] = t
	return t, nil
}

func (s *Store) DeleteTask(userID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return storage.ErrNotFound
	}
	delete(s.tasks, taskID)
	return nil
}

func (s *Store) CreateConversation(userID, title string) (types.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.tick()
	conv := types.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	s.conversations[conv.ID] = conv
	return conv, nil
}

func (s *Store) GetConversation(userID, conversationID string) (types.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok || c.UserID != userID {
		return types.Conversation{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Store) TouchConversation(userID, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok || c.UserID != userID {
		return storage.ErrNotFound
	}
	now := s.tick()
	c.UpdatedAt = &now
	s.conversations[conversationID] = c
	return nil
}

func (s *Store) ListConversations(userID string) ([]types.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []types.Conversation
	for _, c := range s.conversations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(*out[j].UpdatedAt)
	})
	return out, nil
}

func (s *Store) SaveMessage(msg types.Message) (types.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.tick()
	}
	s.messages[msg.ID] = msg
	return msg, nil
}

func (s *Store) ListMessages(userID, conversationID string) ([]types.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.conversations[conversationID]; !ok || c.UserID != userID {
		return nil, storage.ErrNotFound
	}

	var out []types.Message
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
