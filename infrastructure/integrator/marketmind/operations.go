package marketmind

import (
	"context"

	"github.com/vfg2006/marketmind-gateway/internal/domain"
)

func (s *MarketMindIntegrator) GenerateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResponse, error) {
	var resp domain.CampaignResponse
	if err := s.Client.Post(ctx, PathGenerateCampaign, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MarketMindIntegrator) GeneratePitch(ctx context.Context, req domain.PitchRequest) (*domain.PitchResponse, error) {
	var resp domain.PitchResponse
	if err := s.Client.Post(ctx, PathGeneratePitch, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MarketMindIntegrator) GetInsights(ctx context.Context, req domain.InsightsRequest) (*domain.InsightsResponse, error) {
	var resp domain.InsightsResponse
	if err := s.Client.Post(ctx, PathInsights, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeSentiment não rejeita texto vazio; essa checagem é de quem chama.
func (s *MarketMindIntegrator) AnalyzeSentiment(ctx context.Context, req domain.SentimentRequest) (*domain.SentimentResponse, error) {
	var resp domain.SentimentResponse
	if err := s.Client.Post(ctx, PathSentiment, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScoreLeads envia a lista crua como corpo (sem objeto envolvendo), ao
// contrário das outras operações. O backend espera esse formato.
func (s *MarketMindIntegrator) ScoreLeads(ctx context.Context, leads []domain.Lead) ([]domain.LeadScoreResult, error) {
	if leads == nil {
		leads = []domain.Lead{}
	}

	var resp []domain.LeadScoreResult
	if err := s.Client.Post(ctx, PathScoreLeads, leads, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *MarketMindIntegrator) AnalyzeCompetitor(ctx context.Context, req domain.CompetitorRequest) (*domain.CompetitorResponse, error) {
	var resp domain.CompetitorResponse
	if err := s.Client.Post(ctx, s.competitorPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
