package workspace

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/internal/domain"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

// LeadPatch altera apenas os campos informados de um lead
type LeadPatch struct {
	Name       *string  `json:"name,omitempty"`
	Engagement *float64 `json:"engagement,omitempty"`
	Budget     *float64 `json:"budget,omitempty"`
}

type LeadScoringSnapshot struct {
	Leads []domain.Lead `json:"leads"`
	PageSnapshot[[]domain.Lead, []domain.LeadScoreResult]
}

// Snapshot é a cópia de todas as páginas de um workspace
type Snapshot struct {
	ID                 string                                                  `json:"id"`
	CreatedAt          time.Time                                               `json:"created_at"`
	Campaigns          PageSnapshot[ProductForm, domain.CampaignResponse]      `json:"campaigns"`
	SalesPitch         PageSnapshot[ProductForm, domain.PitchResponse]         `json:"sales_pitch"`
	Insights           PageSnapshot[ProductForm, domain.InsightsResponse]      `json:"insights"`
	Sentiment          PageSnapshot[SentimentForm, domain.SentimentResponse]   `json:"sentiment"`
	LeadScoring        LeadScoringSnapshot                                     `json:"lead_scoring"`
	CompetitorAnalysis PageSnapshot[CompetitorForm, domain.CompetitorResponse] `json:"competitor_analysis"`
}

// Workspace é o estado de uma sessão do painel: cada página tem seu próprio
// formulário e resultado, sem compartilhamento entre páginas.
type Workspace struct {
	id  string
	ops marketmind.Operations
	now func() time.Time

	mu           sync.Mutex
	createdAt    time.Time
	lastActiveAt time.Time

	campaigns   page[ProductForm, domain.CampaignResponse]
	pitch       page[ProductForm, domain.PitchResponse]
	insights    page[ProductForm, domain.InsightsResponse]
	sentiment   page[SentimentForm, domain.SentimentResponse]
	leads       *domain.LeadList
	leadScoring page[[]domain.Lead, []domain.LeadScoreResult]
	competitor  page[CompetitorForm, domain.CompetitorResponse]
}

func newWorkspace(id string, ops marketmind.Operations, now func() time.Time) *Workspace {
	createdAt := now()
	return &Workspace{
		id:           id,
		ops:          ops,
		now:          now,
		createdAt:    createdAt,
		lastActiveAt: createdAt,
		leads:        domain.NewLeadList(),
	}
}

func (w *Workspace) ID() string {
	return w.id
}

func (w *Workspace) lastActive() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastActiveAt
}

// submit executa uma operação para a página p. Dois envios seguidos seguem
// independentes; o resultado que chega depois de um envio mais novo é descartado.
func submit[F any, R any](
	ctx context.Context,
	w *Workspace,
	name PageName,
	p *page[F, R],
	form F,
	guardErr error,
	call func(context.Context) (R, error),
) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"session_id": w.id,
		"operation":  string(name),
	})

	w.mu.Lock()
	w.lastActiveAt = w.now()
	if guardErr != nil {
		p.form = form
		w.mu.Unlock()
		logger.WithError(guardErr).Debug("workspace: required fields missing, operation not called")
		return guardErr
	}
	seq := p.begin(form)
	w.mu.Unlock()

	result, err := call(ctx)

	w.mu.Lock()
	current := p.finish(seq, result, err, w.now())
	w.mu.Unlock()

	if !current {
		logger.WithField("sequence", seq).Debug("workspace: discarding stale response")
	}
	if err != nil {
		logger.WithError(err).Warn("workspace: operation failed")
		return err
	}

	logger.Debug("workspace: operation completed")
	return nil
}

func valueOf[T any](resp *T, err error) (T, error) {
	var zero T
	if err != nil || resp == nil {
		return zero, err
	}
	return *resp, nil
}

func (w *Workspace) SubmitCampaign(ctx context.Context, form ProductForm) (PageSnapshot[ProductForm, domain.CampaignResponse], error) {
	guardErr := requireFields(PageCampaigns, field{"product", form.Product}, field{"audience", form.Audience})
	err := submit(ctx, w, PageCampaigns, &w.campaigns, form, guardErr,
		func(ctx context.Context) (domain.CampaignResponse, error) {
			return valueOf(w.ops.GenerateCampaign(ctx, domain.CampaignRequest{Product: form.Product, Audience: form.Audience}))
		})

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.campaigns.snapshot(nil, copyCampaign), err
}

func (w *Workspace) SubmitPitch(ctx context.Context, form ProductForm) (PageSnapshot[ProductForm, domain.PitchResponse], error) {
	guardErr := requireFields(PageSalesPitch, field{"product", form.Product}, field{"audience", form.Audience})
	err := submit(ctx, w, PageSalesPitch, &w.pitch, form, guardErr,
		func(ctx context.Context) (domain.PitchResponse, error) {
			return valueOf(w.ops.GeneratePitch(ctx, domain.PitchRequest{Product: form.Product, Audience: form.Audience}))
		})

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pitch.snapshot(nil, nil), err
}

func (w *Workspace) SubmitInsights(ctx context.Context, form ProductForm) (PageSnapshot[ProductForm, domain.InsightsResponse], error) {
	guardErr := requireFields(PageInsights, field{"product", form.Product}, field{"audience", form.Audience})
	err := submit(ctx, w, PageInsights, &w.insights, form, guardErr,
		func(ctx context.Context) (domain.InsightsResponse, error) {
			return valueOf(w.ops.GetInsights(ctx, domain.InsightsRequest{Product: form.Product, Audience: form.Audience}))
		})

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.insights.snapshot(nil, copyInsights), err
}

func (w *Workspace) SubmitSentiment(ctx context.Context, form SentimentForm) (PageSnapshot[SentimentForm, domain.SentimentResponse], error) {
	guardErr := requireFields(PageSentiment, field{"text", form.Text})
	err := submit(ctx, w, PageSentiment, &w.sentiment, form, guardErr,
		func(ctx context.Context) (domain.SentimentResponse, error) {
			return valueOf(w.ops.AnalyzeSentiment(ctx, domain.SentimentRequest{Text: form.Text}))
		})

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sentiment.snapshot(nil, nil), err
}

func (w *Workspace) SubmitCompetitor(ctx context.Context, form CompetitorForm) (PageSnapshot[CompetitorForm, domain.CompetitorResponse], error) {
	guardErr := requireFields(PageCompetitorAnalysis, field{"competitor", form.Competitor}, field{"industry", form.Industry})
	err := submit(ctx, w, PageCompetitorAnalysis, &w.competitor, form, guardErr,
		func(ctx context.Context) (domain.CompetitorResponse, error) {
			return valueOf(w.ops.AnalyzeCompetitor(ctx, domain.CompetitorRequest{Competitor: form.Competitor, Industry: form.Industry}))
		})

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.competitor.snapshot(nil, copyCompetitor), err
}

// AddLead acrescenta um lead em branco ao final da lista
func (w *Workspace) AddLead() LeadScoringSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastActiveAt = w.now()
	w.leads.Add()
	return w.leadScoringSnapshot()
}

// UpdateLead altera os campos informados do lead na posição i
func (w *Workspace) UpdateLead(i int, patch LeadPatch) (LeadScoringSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastActiveAt = w.now()
	if i < 0 || i >= w.leads.Len() {
		return w.leadScoringSnapshot(), fmt.Errorf("%w: %d", ErrLeadNotFound, i)
	}
	if patch.Name != nil {
		w.leads.SetName(i, *patch.Name)
	}
	if patch.Engagement != nil {
		w.leads.SetEngagement(i, *patch.Engagement)
	}
	if patch.Budget != nil {
		w.leads.SetBudget(i, *patch.Budget)
	}
	return w.leadScoringSnapshot(), nil
}

// ReplaceLeads troca a lista inteira de leads. Uma lista vazia vira um lead em branco.
func (w *Workspace) ReplaceLeads(leads []domain.Lead) LeadScoringSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastActiveAt = w.now()
	w.leads = domain.NewLeadListFrom(leads)
	return w.leadScoringSnapshot()
}

// RemoveLead apaga o lead da posição i. Remover o último lead restante não
// tem efeito e não é erro.
func (w *Workspace) RemoveLead(i int) (LeadScoringSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastActiveAt = w.now()
	if i < 0 || i >= w.leads.Len() {
		return w.leadScoringSnapshot(), fmt.Errorf("%w: %d", ErrLeadNotFound, i)
	}
	w.leads.Remove(i)
	return w.leadScoringSnapshot(), nil
}

// ScoreLeads envia a lista atual de leads para pontuação. Todos os leads
// precisam ter nome.
func (w *Workspace) ScoreLeads(ctx context.Context) (LeadScoringSnapshot, error) {
	w.mu.Lock()
	leads := w.leads.Leads()
	missing := w.leads.MissingNames()
	w.mu.Unlock()

	var guardErr error
	if len(missing) > 0 {
		fields := make([]string, 0, len(missing))
		for _, i := range missing {
			fields = append(fields, fmt.Sprintf("leads[%d].name", i))
		}
		guardErr = &ValidationError{Page: PageLeadScoring, Fields: fields}
	}

	err := submit(ctx, w, PageLeadScoring, &w.leadScoring, leads, guardErr,
		func(ctx context.Context) ([]domain.LeadScoreResult, error) {
			return w.ops.ScoreLeads(ctx, leads)
		})

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.leadScoringSnapshot(), err
}

// Snapshot devolve uma cópia do estado de todas as páginas. Ler a sessão
// também conta como atividade.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastActiveAt = w.now()

	return Snapshot{
		ID:                 w.id,
		CreatedAt:          w.createdAt,
		Campaigns:          w.campaigns.snapshot(nil, copyCampaign),
		SalesPitch:         w.pitch.snapshot(nil, nil),
		Insights:           w.insights.snapshot(nil, copyInsights),
		Sentiment:          w.sentiment.snapshot(nil, nil),
		LeadScoring:        w.leadScoringSnapshot(),
		CompetitorAnalysis: w.competitor.snapshot(nil, copyCompetitor),
	}
}

// leadScoringSnapshot precisa ser chamado com w.mu travado
func (w *Workspace) leadScoringSnapshot() LeadScoringSnapshot {
	return LeadScoringSnapshot{
		Leads:        w.leads.Leads(),
		PageSnapshot: w.leadScoring.snapshot(copySlice[domain.Lead], copySlice[domain.LeadScoreResult]),
	}
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func copyCampaign(in domain.CampaignResponse) domain.CampaignResponse {
	if in.Extra != nil {
		extra := make(map[string]jsoniter.RawMessage, len(in.Extra))
		for k, v := range in.Extra {
			extra[k] = v
		}
		in.Extra = extra
	}
	return in
}

func copyInsights(in domain.InsightsResponse) domain.InsightsResponse {
	in.MarketTrends = copySlice(in.MarketTrends)
	in.GrowthOpportunities = copySlice(in.GrowthOpportunities)
	in.NextBestActions = copySlice(in.NextBestActions)
	return in
}

func copyCompetitor(in domain.CompetitorResponse) domain.CompetitorResponse {
	in.Strengths = copySlice(in.Strengths)
	in.Weaknesses = copySlice(in.Weaknesses)
	return in
}
