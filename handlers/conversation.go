package handlers

import (
	"net/http"

	"tasksaathi/backend/config"
	"tasksaathi/backend/supabase"
	"tasksaathi/backend/types"
)

func GetConversationsHandler(w http.ResponseWriter, r *http.Request) {
	store, userID, err := supabase.StoreFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conversations, err := store.ListConversations(userID)
	if err != nil {
		config.Logger.Error("Failed to fetch conversations:", err)
		writeError(w, "Failed to fetch conversations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetConversationsResponse{
		Success:       true,
		Conversations: conversations,
	})
}
