package handler

import (
	"net/http"

	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/apiErrors"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

// AddLead acrescenta um lead em branco na página de lead scoring
func AddLead(service workspace.WorkspaceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := lookupWorkspace(w, r, service)
		if !ok {
			return
		}
		writeJSON(w, r, http.StatusCreated, ws.AddLead())
	})
}

// UpdateLead aplica um patch parcial ao lead da posição :index
func UpdateLead(service workspace.WorkspaceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := lookupWorkspace(w, r, service)
		if !ok {
			return
		}
		index, ok := intParam(w, r, "index")
		if !ok {
			return
		}

		var patch workspace.LeadPatch
		if !decodeBody(w, r, &patch) {
			return
		}

		snapshot, err := ws.UpdateLead(index, patch)
		if err != nil {
			apiErrors.WriteFromError(w, err)
			return
		}
		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

func RemoveLead(service workspace.WorkspaceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := lookupWorkspace(w, r, service)
		if !ok {
			return
		}
		index, ok := intParam(w, r, "index")
		if !ok {
			return
		}

		snapshot, err := ws.RemoveLead(index)
		if err != nil {
			apiErrors.WriteFromError(w, err)
			return
		}
		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// ScoreLeads envia a lista atual da sessão para pontuação
func ScoreLeads(service workspace.WorkspaceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := lookupWorkspace(w, r, service)
		if !ok {
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"session_id": ws.ID(),
			"operation":  string(workspace.PageLeadScoring),
		})

		snapshot, err := ws.ScoreLeads(r.Context())
		if err != nil {
			logger.WithError(err).Warn("leads: scoring failed")
			apiErrors.WriteFromError(w, err)
			return
		}

		logger.WithField("lead_count", len(snapshot.Leads)).Info("leads: scoring completed")
		writeJSON(w, r, http.StatusOK, snapshot)
	})
}
