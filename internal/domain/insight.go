package domain

type InsightsRequest struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
}

// InsightsResponse representa os insights de mercado gerados pelo backend.
// Uma lista nil significa que o campo não veio na resposta.
type InsightsResponse struct {
	MarketTrends        []string `json:"market_trends,omitempty"`
	GrowthOpportunities []string `json:"growth_opportunities,omitempty"`
	RecommendedStrategy *string  `json:"recommended_strategy,omitempty"`
	NextBestActions     []string `json:"next_best_actions,omitempty"`
}
