package marketmind

import (
	"context"

	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mmclient"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/internal/domain"
)

const (
	PathGenerateCampaign = "/generate_campaign"
	PathGeneratePitch    = "/generate_pitch"
	PathInsights         = "/insights"
	PathSentiment        = "/sentiment"
	PathScoreLeads       = "/score_leads"
)

//go:generate mockgen -destination=mocks/mock_operations.go -package=mocks . Operations
//go:generate mockgen -destination=mocks/mock_dashboard.go -package=mocks . Dashboard

// Operations são as seis operações de geração de conteúdo do backend.
// Erros do transporte (*mmclient.TransportError) são devolvidos sem alteração.
type Operations interface {
	GenerateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResponse, error)
	GeneratePitch(ctx context.Context, req domain.PitchRequest) (*domain.PitchResponse, error)
	GetInsights(ctx context.Context, req domain.InsightsRequest) (*domain.InsightsResponse, error)
	AnalyzeSentiment(ctx context.Context, req domain.SentimentRequest) (*domain.SentimentResponse, error)
	ScoreLeads(ctx context.Context, leads []domain.Lead) ([]domain.LeadScoreResult, error)
	AnalyzeCompetitor(ctx context.Context, req domain.CompetitorRequest) (*domain.CompetitorResponse, error)
}

type MarketMindIntegrator struct {
	Client         mmclient.Client
	competitorPath string
}

func New(cfg *config.Config, client mmclient.Client) *MarketMindIntegrator {
	competitorPath := cfg.MarketMind.CompetitorPath
	if competitorPath == "" {
		competitorPath = "/competitor_analysis"
	}
	return &MarketMindIntegrator{
		Client:         client,
		competitorPath: competitorPath,
	}
}
