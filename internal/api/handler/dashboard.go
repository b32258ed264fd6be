package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/pkg/apiErrors"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

// passthrough repassa uma leitura do backend sem alterar o corpo
func passthrough[T any](name string, fetch func(ctx context.Context) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("operation", name)

		body, err := fetch(r.Context())
		if err != nil {
			logger.WithError(err).Warn("dashboard: backend read failed")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, body)
	})
}

func DashboardSummary(service marketmind.Dashboard) http.Handler {
	return passthrough("dashboard_summary", service.GetDashboardSummary)
}

func LeadDistribution(service marketmind.Dashboard) http.Handler {
	return passthrough("lead_distribution", service.GetLeadDistribution)
}

func CampaignPerformance(service marketmind.Dashboard) http.Handler {
	return passthrough("campaign_performance", service.GetCampaignPerformance)
}

func AdminMetrics(service marketmind.Dashboard) http.Handler {
	return passthrough("admin_metrics", service.GetAdminMetrics)
}

func APICallsDaily(service marketmind.Dashboard) http.Handler {
	return passthrough("api_calls_daily", service.GetAPICallsDaily)
}

func ListUsers(service marketmind.Dashboard) http.Handler {
	return passthrough("list_users", service.ListUsers)
}

func Revenue(service marketmind.Dashboard) http.Handler {
	return passthrough("revenue", service.GetRevenue)
}

// ToggleUser alterna o status Active/Inactive do usuário :id
func ToggleUser(service marketmind.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		user, err := service.ToggleUser(r.Context(), id)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("admin: toggle user failed")
			apiErrors.WriteFromError(w, err)
			return
		}

		log.ForContext(r.Context()).Infof("admin: user %d is now %s", user.ID, user.Status)
		writeJSON(w, r, http.StatusOK, user)
	})
}
