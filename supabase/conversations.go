package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"

	"tasksaathi/backend/storage"
	"tasksaathi/backend/types"
)

func (s *Store) CreateConversation(userID, title string) (types.Conversation, error) {
	newConversation := types.Conversation{
		UserID: userID,
		Title:  title,
		// Do NOT set CreatedAt/UpdatedAt, the database defaults them
	}

	created := []types.Conversation{newConversation}
	resp, _, err := s.client.From("conversations").Insert(created, false, "", "", "").Execute()
	if err != nil {
		return types.Conversation{}, fmt.Errorf("failed to insert conversation: %w", err)
	}

	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Conversation{}, fmt.Errorf("failed to decode created conversation: %w", err)
	}
	if len(created) == 0 {
		return types.Conversation{}, fmt.Errorf("insert returned no conversation")
	}
	return created[0], nil
}

func (s *Store) GetConversation(userID, conversationID string) (types.Conversation, error) {
	resp, _, err := s.client.From("conversations").
		Select("*", "", false).
		Eq("id", conversationID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return types.Conversation{}, err
	}

	var conversations []types.Conversation
	if err := json.Unmarshal(resp, &conversations); err != nil {
		return types.Conversation{}, fmt.Errorf("failed to decode conversation data: %w", err)
	}
	if len(conversations) == 0 {
		return types.Conversation{}, storage.ErrNotFound
	}
	return conversations[0], nil
}

func (s *Store) TouchConversation(userID, conversationID string) error {
	resp, _, err := s.client.From("conversations").
		Update(map[string]interface{}{"updated_at": time.Now().UTC().Format(time.RFC3339)}, "", "").
		Eq("id", conversationID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}

	var updated []types.Conversation
	if err := json.Unmarshal(resp, &updated); err != nil {
		return fmt.Errorf("failed to parse update result: %w", err)
	}
	if len(updated) == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) ListConversations(userID string) ([]types.Conversation, error) {
	if userID == "" {
		return nil, fmt.Errorf("missing user ID")
	}

	resp, _, err := s.client.From("conversations").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("updated_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, err
	}

	var conversations []types.Conversation
	if err := json.Unmarshal(resp, &conversations); err != nil {
		return nil, fmt.Errorf("failed to decode conversation data: %w", err)
	}
	return conversations, nil
}
