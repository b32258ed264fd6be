package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/apiErrors"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

// CreateSession abre um workspace novo, com todas as páginas vazias
func CreateSession(service workspace.WorkspaceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ws, err := service.Create()
		if err != nil {
			logger.WithError(err).Warn("sessions: failed to create workspace")
			apiErrors.WriteFromError(w, err)
			return
		}

		logger.WithField("session_id", ws.ID()).Info("sessions: workspace created")
		writeJSON(w, r, http.StatusCreated, ws.Snapshot())
	})
}

func GetSession(service workspace.WorkspaceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := lookupWorkspace(w, r, service)
		if !ok {
			return
		}
		writeJSON(w, r, http.StatusOK, ws.Snapshot())
	})
}

func DeleteSession(service workspace.WorkspaceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(id); err != nil {
			apiErrors.WriteFromError(w, err)
			return
		}

		log.ForContext(r.Context()).WithField("session_id", id).Info("sessions: workspace closed")
		w.WriteHeader(http.StatusNoContent)
	})
}
