package routes

import (
	"net/http"

	"tasksaathi/backend/handlers"
)

// RegisterChatRoutes registers all chat-related routes
func RegisterChatRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", handlers.ChatHandler)
	mux.HandleFunc("GET /chat", handlers.GetMessagesHandler)
}
