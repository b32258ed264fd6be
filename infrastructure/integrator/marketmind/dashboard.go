package marketmind

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/marketmind-gateway/internal/domain"
)

// ErrUserNotFound indica que o backend respondeu {"error": "User not found"} ao alternar um usuário
var ErrUserNotFound = errors.New("marketmind: user not found")

// Dashboard agrupa as leituras de painel e administração expostas pelo backend
type Dashboard interface {
	GetBackendStatus(ctx context.Context) (*domain.BackendStatus, error)
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
	GetLeadDistribution(ctx context.Context) (*domain.LeadDistribution, error)
	GetCampaignPerformance(ctx context.Context) ([]domain.CampaignPerformancePoint, error)
	GetAdminMetrics(ctx context.Context) (*domain.AdminMetrics, error)
	GetAPICallsDaily(ctx context.Context) ([]domain.APICallsDay, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ToggleUser(ctx context.Context, userID int) (*domain.User, error)
	GetRevenue(ctx context.Context) ([]domain.RevenuePoint, error)
}

func (s *MarketMindIntegrator) GetBackendStatus(ctx context.Context) (*domain.BackendStatus, error) {
	var resp domain.BackendStatus
	if err := s.Client.Get(ctx, "/", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MarketMindIntegrator) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	var resp domain.DashboardSummary
	if err := s.Client.Get(ctx, "/dashboard/summary", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MarketMindIntegrator) GetLeadDistribution(ctx context.Context) (*domain.LeadDistribution, error) {
	var resp domain.LeadDistribution
	if err := s.Client.Get(ctx, "/dashboard/lead-distribution", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MarketMindIntegrator) GetCampaignPerformance(ctx context.Context) ([]domain.CampaignPerformancePoint, error) {
	var resp []domain.CampaignPerformancePoint
	if err := s.Client.Get(ctx, "/dashboard/campaign-performance", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *MarketMindIntegrator) GetAdminMetrics(ctx context.Context) (*domain.AdminMetrics, error) {
	var resp domain.AdminMetrics
	if err := s.Client.Get(ctx, "/admin/metrics", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MarketMindIntegrator) GetAPICallsDaily(ctx context.Context) ([]domain.APICallsDay, error) {
	var resp []domain.APICallsDay
	if err := s.Client.Get(ctx, "/admin/api-calls-daily", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *MarketMindIntegrator) ListUsers(ctx context.Context) ([]domain.User, error) {
	var resp []domain.User
	if err := s.Client.Get(ctx, "/admin/users", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ToggleUser alterna o status do usuário. O backend responde 200 com
// {"error": "User not found"} quando o ID não existe; nesse caso devolve
// ErrUserNotFound.
func (s *MarketMindIntegrator) ToggleUser(ctx context.Context, userID int) (*domain.User, error) {
	var resp struct {
		domain.User
		Error string `json:"error"`
	}
	if err := s.Client.Put(ctx, fmt.Sprintf("/admin/users/%d/toggle", userID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}
	return &resp.User, nil
}

func (s *MarketMindIntegrator) GetRevenue(ctx context.Context) ([]domain.RevenuePoint, error) {
	var resp []domain.RevenuePoint
	if err := s.Client.Get(ctx, "/admin/revenue", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
