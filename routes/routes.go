package routes

import (
	"net/http"

	"tasksaathi/backend/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handlers.HealthHandler)
	RegisterChatRoutes(mux)
	RegisterTaskRoutes(mux)
	RegisterConversationRoutes(mux)
	RegisterEventRoutes(mux)
}
