package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"tasksaathi/backend/chat"
	"tasksaathi/backend/config"
	"tasksaathi/backend/storage"
	"tasksaathi/backend/supabase"
	"tasksaathi/backend/types"
)

func ChatHandler(w http.ResponseWriter, r *http.Request) {
	// Parse and validate the request body
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		writeError(w, "Missing message", http.StatusBadRequest)
		return
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		config.Logger.Warn("Missing Authorization header")
		writeError(w, "Missing Authorization header", http.StatusUnauthorized)
		return
	}
	store, userID, err := supabase.StoreFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	svc := chat.NewService(store, Publisher)
	result, err := svc.ProcessTurn(userID, req.ConversationID, req.Message)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, "Conversation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		config.Logger.Error("Failed to process chat turn:", err)
		writeError(w, "Could not process message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:        true,
		ConversationID: result.ConversationID,
		MessageID:      result.MessageID,
		Response:       result.Reply,
		ToolCalls:      result.ToolCalls,
	})
}

func GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("id")
	if conversationID == "" {
		writeError(w, "Missing conversation id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(conversationID); err != nil {
		writeError(w, "Invalid conversation id", http.StatusBadRequest)
		return
	}

	store, userID, err := supabase.StoreFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	messages, err := store.ListMessages(userID, conversationID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, "Conversation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		config.Logger.Error("Failed to fetch messages:", err)
		writeError(w, "Could not fetch messages", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetMessagesResponse{
		Success:  true,
		Messages: messages,
	})
}
