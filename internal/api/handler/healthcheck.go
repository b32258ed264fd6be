package handler

import (
	"net/http"
	"time"
)

// SessionCounter informa quantos workspaces estão abertos
type SessionCounter interface {
	Count() int
}

func HealthcheckHandler(sessions SessionCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"sessions": sessions.Count(),
		})
	})
}
