package domain

type CompetitorRequest struct {
	Competitor string `json:"competitor"`
	Industry   string `json:"industry"`
}

type CompetitorResponse struct {
	Strengths               []string `json:"strengths,omitempty"`
	Weaknesses              []string `json:"weaknesses,omitempty"`
	DifferentiationStrategy *string  `json:"differentiation_strategy,omitempty"`
	PositioningAngle        *string  `json:"positioning_angle,omitempty"`
}
