package handlers

import (
	"encoding/json"
	"net/http"

	"tasksaathi/backend/config"
	"tasksaathi/backend/events"
	"tasksaathi/backend/types"
)

type eventAck struct {
	Status string `json:"status"`
}

// SubscribeHandler tells the pub/sub sidecar which topics to deliver here.
func SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, events.Subscriptions())
}

// TaskLifecycleHandler feeds delivered lifecycle events to the recurrence
// trigger. Malformed or unprocessable events are logged and acked; the
// transport retries on its own and a nack would only duplicate work.
func TaskLifecycleHandler(w http.ResponseWriter, r *http.Request) {
	var event types.PubsubEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		config.Logger.Warn("Malformed lifecycle event:", err)
		writeJSON(w, http.StatusOK, eventAck{Status: "SUCCESS"})
		return
	}

	Trigger.HandleTaskLifecycle(event)
	writeJSON(w, http.StatusOK, eventAck{Status: "SUCCESS"})
}

func RemindersHandler(w http.ResponseWriter, r *http.Request) {
	var event types.ReminderPubsubEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		config.Logger.Warn("Malformed reminder event:", err)
		writeJSON(w, http.StatusOK, eventAck{Status: "SUCCESS"})
		return
	}

	Trigger.HandleReminder(event)
	writeJSON(w, http.StatusOK, eventAck{Status: "SUCCESS"})
}
