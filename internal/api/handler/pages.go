package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/apiErrors"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

// submitPage decodifica o formulário da página e o envia pelo workspace da sessão.
// A resposta de sucesso é o estado atualizado da página.
func submitPage[F any, R any](
	service workspace.WorkspaceService,
	name workspace.PageName,
	submit func(ws *workspace.Workspace, ctx context.Context, form F) (workspace.PageSnapshot[F, R], error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := lookupWorkspace(w, r, service)
		if !ok {
			return
		}

		var form F
		if !decodeBody(w, r, &form) {
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"session_id": ws.ID(),
			"operation":  string(name),
		})

		snapshot, err := submit(ws, r.Context(), form)
		if err != nil {
			logger.WithError(err).Warn("pages: submit failed")
			apiErrors.WriteFromError(w, err)
			return
		}

		logger.Info("pages: submit completed")
		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

func SubmitCampaign(service workspace.WorkspaceService) http.Handler {
	return submitPage(service, workspace.PageCampaigns, (*workspace.Workspace).SubmitCampaign)
}

func SubmitPitch(service workspace.WorkspaceService) http.Handler {
	return submitPage(service, workspace.PageSalesPitch, (*workspace.Workspace).SubmitPitch)
}

func SubmitInsights(service workspace.WorkspaceService) http.Handler {
	return submitPage(service, workspace.PageInsights, (*workspace.Workspace).SubmitInsights)
}

func SubmitSentiment(service workspace.WorkspaceService) http.Handler {
	return submitPage(service, workspace.PageSentiment, (*workspace.Workspace).SubmitSentiment)
}

func SubmitCompetitor(service workspace.WorkspaceService) http.Handler {
	return submitPage(service, workspace.PageCompetitorAnalysis, (*workspace.Workspace).SubmitCompetitor)
}
