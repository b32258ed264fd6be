package workspace

import "time"

type PageName string

const (
	PageCampaigns          PageName = "campaigns"
	PageSalesPitch         PageName = "sales_pitch"
	PageInsights           PageName = "insights"
	PageSentiment          PageName = "sentiment"
	PageLeadScoring        PageName = "lead_scoring"
	PageCompetitorAnalysis PageName = "competitor_analysis"
)

// ProductForm é o formulário das páginas de campanha, pitch e insights
type ProductForm struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
}

type SentimentForm struct {
	Text string `json:"text"`
}

type CompetitorForm struct {
	Competitor string `json:"competitor"`
	Industry   string `json:"industry"`
}

// PageSnapshot é a cópia do estado de uma página entregue à camada de exibição
type PageSnapshot[F any, R any] struct {
	Form      F          `json:"form"`
	Result    *R         `json:"result,omitempty"`
	Loading   bool       `json:"loading"`
	Error     string     `json:"error,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// page guarda o estado de uma página. Cada envio recebe um número de
// sequência; só a resposta do envio mais recente é gravada no resultado.
// Protegido pelo mutex do Workspace dono.
type page[F any, R any] struct {
	form      F
	result    R
	hasResult bool
	inFlight  int
	lastErr   error
	seq       uint64
	updatedAt time.Time
}

func (p *page[F, R]) begin(form F) uint64 {
	p.form = form
	p.seq++
	p.inFlight++
	return p.seq
}

// finish grava o resultado do envio seq e informa se ele ainda era o mais recente
func (p *page[F, R]) finish(seq uint64, result R, err error, now time.Time) bool {
	p.inFlight--
	if seq != p.seq {
		return false
	}

	p.updatedAt = now
	if err != nil {
		p.lastErr = err
		return true
	}

	p.result = result
	p.hasResult = true
	p.lastErr = nil
	return true
}

func (p *page[F, R]) snapshot(copyForm func(F) F, copyResult func(R) R) PageSnapshot[F, R] {
	snap := PageSnapshot[F, R]{
		Form:    p.form,
		Loading: p.inFlight > 0,
	}
	if copyForm != nil {
		snap.Form = copyForm(p.form)
	}
	if p.hasResult {
		result := p.result
		if copyResult != nil {
			result = copyResult(p.result)
		}
		snap.Result = &result
	}
	if p.lastErr != nil {
		snap.Error = p.lastErr.Error()
	}
	if !p.updatedAt.IsZero() {
		updatedAt := p.updatedAt
		snap.UpdatedAt = &updatedAt
	}
	return snap
}
