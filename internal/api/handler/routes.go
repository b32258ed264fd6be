package handler

import (
	"net/http"

	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/internal/api/handler/router"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
)

func Healthcheck(sessions SessionCounter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(sessions),
		},
	}
}

func Sessions(service workspace.WorkspaceService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(service),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSession(service),
		},
	}
}

// Pages retorna as rotas de envio das páginas de geração de conteúdo
func Pages(service workspace.WorkspaceService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions/:id/campaign",
			Method:  http.MethodPost,
			Handler: SubmitCampaign(service),
		},
		{
			Path:    "/v1/sessions/:id/pitch",
			Method:  http.MethodPost,
			Handler: SubmitPitch(service),
		},
		{
			Path:    "/v1/sessions/:id/insights",
			Method:  http.MethodPost,
			Handler: SubmitInsights(service),
		},
		{
			Path:    "/v1/sessions/:id/sentiment",
			Method:  http.MethodPost,
			Handler: SubmitSentiment(service),
		},
		{
			Path:    "/v1/sessions/:id/competitor",
			Method:  http.MethodPost,
			Handler: SubmitCompetitor(service),
		},
	}
}

func Leads(service workspace.WorkspaceService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions/:id/leads",
			Method:  http.MethodPost,
			Handler: AddLead(service),
		},
		{
			Path:    "/v1/sessions/:id/leads/score",
			Method:  http.MethodPost,
			Handler: ScoreLeads(service),
		},
		{
			Path:    "/v1/sessions/:id/leads/:index",
			Method:  http.MethodPut,
			Handler: UpdateLead(service),
		},
		{
			Path:    "/v1/sessions/:id/leads/:index",
			Method:  http.MethodDelete,
			Handler: RemoveLead(service),
		},
	}
}

func Dashboard(service marketmind.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: DashboardSummary(service),
		},
		{
			Path:    "/v1/dashboard/lead-distribution",
			Method:  http.MethodGet,
			Handler: LeadDistribution(service),
		},
		{
			Path:    "/v1/dashboard/campaign-performance",
			Method:  http.MethodGet,
			Handler: CampaignPerformance(service),
		},
	}
}

func Admin(service marketmind.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/metrics",
			Method:  http.MethodGet,
			Handler: AdminMetrics(service),
		},
		{
			Path:    "/v1/admin/api-calls-daily",
			Method:  http.MethodGet,
			Handler: APICallsDaily(service),
		},
		{
			Path:    "/v1/admin/users",
			Method:  http.MethodGet,
			Handler: ListUsers(service),
		},
		{
			Path:    "/v1/admin/users/:id/toggle",
			Method:  http.MethodPut,
			Handler: ToggleUser(service),
		},
		{
			Path:    "/v1/admin/revenue",
			Method:  http.MethodGet,
			Handler: Revenue(service),
		},
	}
}

func BackendStatus(probe BackendProber) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/backend/status",
			Method:  http.MethodGet,
			Handler: GetBackendStatus(probe),
		},
		{
			Path:    "/v1/backend/status/check",
			Method:  http.MethodPost,
			Handler: CheckBackendStatus(probe),
		},
	}
}
