package routes

import (
	"net/http"

	"tasksaathi/backend/handlers"
)

// RegisterConversationRoutes registers all conversation-related routes
func RegisterConversationRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /conversations", handlers.GetConversationsHandler)
	mux.HandleFunc("GET /conversations/messages", handlers.GetMessagesHandler)
}
