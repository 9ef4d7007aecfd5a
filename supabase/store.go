package supabase

import (
	"encoding/json"
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// Store implements storage.Store on top of a user-scoped supabase client.
type Store struct {
	client *supabase.Client
}

func NewStore(client *supabase.Client) *Store {
	return &Store{client: client}
}

func (s *Store) UserExists(userID string) (bool, error) {
	resp, _, err := s.client.From("users").
		Select("id", "", false).
		Eq("id", userID).
		Execute()
	if err != nil {
		return false, err
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp, &rows); err != nil {
		return false, fmt.Errorf("failed to decode user data: %w", err)
	}
	return len(rows) > 0, nil
}
