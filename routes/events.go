package routes

import (
	"net/http"

	"tasksaathi/backend/config"
	"tasksaathi/backend/handlers"
)

// RegisterEventRoutes registers the pub/sub subscription and delivery routes
func RegisterEventRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /dapr/subscribe", handlers.SubscribeHandler)
	mux.HandleFunc("POST "+config.TaskLifecycleRoute, handlers.TaskLifecycleHandler)
	mux.HandleFunc("POST "+config.RemindersRoute, handlers.RemindersHandler)
}
