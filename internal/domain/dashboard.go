package domain

// BackendStatus é a resposta da rota raiz do backend
type BackendStatus struct {
	Status string `json:"status"`
}

type DashboardSummary struct {
	TotalCampaigns  int     `json:"total_campaigns"`
	TotalLeads      int     `json:"total_leads"`
	ConversionRate  float64 `json:"conversion_rate"`
	RevenueEstimate float64 `json:"revenue_estimate"`
}

type LeadDistribution struct {
	Hot  int `json:"hot"`
	Warm int `json:"warm"`
	Cold int `json:"cold"`
}

type CampaignPerformancePoint struct {
	Month     string `json:"month"`
	Campaigns int    `json:"campaigns"`
	Leads     int    `json:"leads"`
}

type AdminMetrics struct {
	TotalAPICalls    int     `json:"total_api_calls"`
	CampaignsCreated int     `json:"campaigns_created"`
	PitchesCreated   int     `json:"pitches_created"`
	LeadsScored      int     `json:"leads_scored"`
	ActiveUsers      int     `json:"active_users"`
	EstimatedRevenue float64 `json:"estimated_revenue"`
}

// APICallsDay é a contagem de chamadas de um dia (date no formato 2006-01-02)
type APICallsDay struct {
	Date  string `json:"date"`
	Calls int    `json:"calls"`
}

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}
