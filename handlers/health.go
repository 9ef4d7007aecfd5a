package handlers

import "net/http"

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "tasksaathi-backend",
		"status":  "ok",
	})
}
