package handlers

import (
	"encoding/json"
	"net/http"

	"tasksaathi/backend/events"
	"tasksaathi/backend/supabase"
	"tasksaathi/backend/types"
)

// Publisher and Trigger are shared across requests; wired by InitEvents.
var (
	Publisher events.Publisher = events.NopPublisher{}
	Trigger   *events.Trigger
)

// InitEvents wires the pub/sub side of the service. The trigger runs
// outside any user request, so it uses the service-level supabase client.
func InitEvents() {
	Publisher = events.NewDaprPublisher()
	Trigger = events.NewTrigger(supabase.NewStore(supabase.Client))
}

type errorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, errorResponse{
		Success:      false,
		ErrorMessage: message,
	})
}

func statusForOutcome(outcome types.ToolOutcome) int {
	switch outcome {
	case types.OutcomeNotFound:
		return http.StatusNotFound
	case types.OutcomeInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
