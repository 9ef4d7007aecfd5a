package supabase

import (
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"tasksaathi/backend/types"
)

func (s *Store) SaveMessage(msg types.Message) (types.Message, error) {
	created := []types.Message{msg}
	resp, _, err := s.client.From("messages").Insert(created, false, "", "", "").Execute()
	if err != nil {
		return types.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}

	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Message{}, fmt.Errorf("failed to decode created message: %w", err)
	}
	if len(created) == 0 {
		return types.Message{}, fmt.Errorf("insert returned no message")
	}
	return created[0], nil
}

func (s *Store) ListMessages(userID, conversationID string) ([]types.Message, error) {
	// Ownership check first so a foreign conversation reads as not found.
	if _, err := s.GetConversation(userID, conversationID); err != nil {
		return nil, err
	}

	resp, _, err := s.client.From("messages").
		Select("*", "", false).
		Eq("conversation_id", conversationID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []types.Message
	if err := json.Unmarshal(resp, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	return messages, nil
}
