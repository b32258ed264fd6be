package workspace

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mmclient"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mocks"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockOperations) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ops := mocks.NewMockOperations(ctrl)

	cfg := &config.Config{Workspace: config.Workspace{MaxSessions: 2}}
	return NewService(cfg, ops), ops
}

func newTestWorkspace(t *testing.T) (*Workspace, *mocks.MockOperations) {
	t.Helper()
	service, ops := newTestService(t)
	ws, err := service.Create()
	require.NoError(t, err)
	return ws, ops
}

func TestSubmitCampaign_StoresResponseVerbatim(t *testing.T) {
	ws, ops := newTestWorkspace(t)

	ops.EXPECT().
		GenerateCampaign(gomock.Any(), domain.CampaignRequest{Product: "AI Analytics Platform", Audience: "B2B SaaS companies"}).
		Return(&domain.CampaignResponse{Campaign: domain.Ptr("Q4 launch plan")}, nil)

	snap, err := ws.SubmitCampaign(context.Background(), ProductForm{Product: "AI Analytics Platform", Audience: "B2B SaaS companies"})

	require.NoError(t, err)
	require.NotNil(t, snap.Result)
	assert.Equal(t, "Q4 launch plan", domain.Deref(snap.Result.Campaign))
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	assert.NotNil(t, snap.UpdatedAt)
}

func TestSubmit_GuardsPreventCall(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		submit     func() error
		wantFields []string
	}{
		{
			name: "campanha sem público",
			submit: func() error {
				_, err := ws.SubmitCampaign(ctx, ProductForm{Product: "P"})
				return err
			},
			wantFields: []string{"audience"},
		},
		{
			name: "pitch vazio",
			submit: func() error {
				_, err := ws.SubmitPitch(ctx, ProductForm{})
				return err
			},
			wantFields: []string{"product", "audience"},
		},
		{
			name: "insights com espaços",
			submit: func() error {
				_, err := ws.SubmitInsights(ctx, ProductForm{Product: "  ", Audience: "A"})
				return err
			},
			wantFields: []string{"product"},
		},
		{
			name: "sentimento com texto vazio",
			submit: func() error {
				_, err := ws.SubmitSentiment(ctx, SentimentForm{Text: ""})
				return err
			},
			wantFields: []string{"text"},
		},
		{
			name: "concorrente sem indústria",
			submit: func() error {
				_, err := ws.SubmitCompetitor(ctx, CompetitorForm{Competitor: "Acme"})
				return err
			},
			wantFields: []string{"industry"},
		},
		{
			name: "lead sem nome",
			submit: func() error {
				_, err := ws.ScoreLeads(ctx)
				return err
			},
			wantFields: []string{"leads[0].name"},
		},
		{
			name: "lead com nome só de espaços",
			submit: func() error {
				ws.ReplaceLeads([]domain.Lead{{Name: "Acme"}, {Name: "   ", Engagement: 10}})
				_, err := ws.ScoreLeads(ctx)
				return err
			},
			wantFields: []string{"leads[1].name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// nenhum EXPECT: qualquer chamada ao mock falha o teste
			err := tt.submit()

			assert.ErrorIs(t, err, ErrMissingRequiredData)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantFields, validationErr.Fields)
		})
	}
}

func TestSubmitSentiment_GuardKeepsForm(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	snap, err := ws.SubmitSentiment(context.Background(), SentimentForm{Text: " "})

	assert.Error(t, err)
	assert.Equal(t, " ", snap.Form.Text)
	assert.Nil(t, snap.Result)
	assert.Empty(t, snap.Error)
}

func TestSubmit_TransportErrorPropagatesUnchanged(t *testing.T) {
	ws, ops := newTestWorkspace(t)
	transportErr := &mmclient.TransportError{Method: http.MethodPost, Path: "/generate_pitch", StatusCode: 500, Message: "boom"}

	ops.EXPECT().
		GeneratePitch(gomock.Any(), gomock.Any()).
		Return(&domain.PitchResponse{Pitch: domain.Ptr("first")}, nil)
	ops.EXPECT().
		GeneratePitch(gomock.Any(), gomock.Any()).
		Return(nil, transportErr)

	_, err := ws.SubmitPitch(context.Background(), ProductForm{Product: "P", Audience: "A"})
	require.NoError(t, err)

	snap, err := ws.SubmitPitch(context.Background(), ProductForm{Product: "P2", Audience: "A2"})

	assert.Same(t, transportErr, err)
	assert.Equal(t, transportErr.Error(), snap.Error)
	require.NotNil(t, snap.Result)
	assert.Equal(t, "first", domain.Deref(snap.Result.Pitch))
	assert.Equal(t, "P2", snap.Form.Product)
}

func TestSubmit_StaleResponseIsDiscarded(t *testing.T) {
	ws, ops := newTestWorkspace(t)

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	ops.EXPECT().
		GetInsights(gomock.Any(), domain.InsightsRequest{Product: "first", Audience: "A"}).
		DoAndReturn(func(ctx context.Context, req domain.InsightsRequest) (*domain.InsightsResponse, error) {
			close(firstStarted)
			<-releaseFirst
			return &domain.InsightsResponse{RecommendedStrategy: domain.Ptr("stale")}, nil
		})
	ops.EXPECT().
		GetInsights(gomock.Any(), domain.InsightsRequest{Product: "second", Audience: "A"}).
		Return(&domain.InsightsResponse{RecommendedStrategy: domain.Ptr("fresh")}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = ws.SubmitInsights(context.Background(), ProductForm{Product: "first", Audience: "A"})
	}()

	<-firstStarted
	assert.True(t, ws.Snapshot().Insights.Loading)

	snap, err := ws.SubmitInsights(context.Background(), ProductForm{Product: "second", Audience: "A"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", domain.Deref(snap.Result.RecommendedStrategy))
	assert.True(t, snap.Loading, "first request still in flight")

	close(releaseFirst)
	wg.Wait()

	final := ws.Snapshot().Insights
	assert.False(t, final.Loading)
	assert.Equal(t, "fresh", domain.Deref(final.Result.RecommendedStrategy))
	assert.Equal(t, "second", final.Form.Product)
}

func TestLeadScoring_EditAndScore(t *testing.T) {
	ws, ops := newTestWorkspace(t)

	ws.AddLead()
	_, err := ws.UpdateLead(0, LeadPatch{Name: domain.Ptr("A"), Engagement: domain.Ptr(5.0), Budget: domain.Ptr(100.0)})
	require.NoError(t, err)
	_, err = ws.UpdateLead(1, LeadPatch{Name: domain.Ptr("B"), Engagement: domain.Ptr(9.0), Budget: domain.Ptr(500.0)})
	require.NoError(t, err)

	submitted := []domain.Lead{
		{Name: "A", Engagement: 5, Budget: 100},
		{Name: "B", Engagement: 9, Budget: 500},
	}
	results := []domain.LeadScoreResult{
		{Name: "B", Score: 56, Status: domain.LeadWarm},
		{Name: "A", Score: 30.4, Status: domain.LeadCold},
	}
	ops.EXPECT().ScoreLeads(gomock.Any(), submitted).Return(results, nil)

	snap, err := ws.ScoreLeads(context.Background())

	require.NoError(t, err)
	assert.Equal(t, submitted, snap.Leads)
	assert.Equal(t, submitted, snap.Form)
	require.NotNil(t, snap.Result)
	assert.Equal(t, results, *snap.Result, "order is kept as received")
}

func TestLeadScoring_RemoveRules(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	snap, err := ws.RemoveLead(0)
	require.NoError(t, err)
	assert.Len(t, snap.Leads, 1, "last remaining lead is kept")

	_, err = ws.RemoveLead(3)
	assert.ErrorIs(t, err, ErrLeadNotFound)

	_, err = ws.UpdateLead(-1, LeadPatch{Name: domain.Ptr("x")})
	assert.ErrorIs(t, err, ErrLeadNotFound)

	ws.AddLead()
	ws.UpdateLead(1, LeadPatch{Name: domain.Ptr("second")})
	snap, err = ws.RemoveLead(0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Lead{{Name: "second"}}, snap.Leads)
}

func TestLeadScoring_PartialPatchKeepsOtherFields(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	ws.UpdateLead(0, LeadPatch{Name: domain.Ptr("A"), Engagement: domain.Ptr(3.0), Budget: domain.Ptr(10.0)})

	snap, err := ws.UpdateLead(0, LeadPatch{Budget: domain.Ptr(20.0)})

	require.NoError(t, err)
	assert.Equal(t, domain.Lead{Name: "A", Engagement: 3, Budget: 20}, snap.Leads[0])
}

func TestSnapshot_IsACopy(t *testing.T) {
	ws, ops := newTestWorkspace(t)
	ops.EXPECT().
		AnalyzeCompetitor(gomock.Any(), gomock.Any()).
		Return(&domain.CompetitorResponse{Strengths: []string{"brand"}}, nil)

	_, err := ws.SubmitCompetitor(context.Background(), CompetitorForm{Competitor: "Acme", Industry: "Retail"})
	require.NoError(t, err)

	snap := ws.Snapshot()
	snap.CompetitorAnalysis.Result.Strengths[0] = "changed"
	snap.LeadScoring.Leads[0].Name = "changed"

	again := ws.Snapshot()
	assert.Equal(t, "brand", again.CompetitorAnalysis.Result.Strengths[0])
	assert.Equal(t, "", again.LeadScoring.Leads[0].Name)
}

func TestPagesAreIsolated(t *testing.T) {
	ws, ops := newTestWorkspace(t)
	ops.EXPECT().
		AnalyzeSentiment(gomock.Any(), domain.SentimentRequest{Text: "great"}).
		Return(&domain.SentimentResponse{Sentiment: domain.Ptr(domain.SentimentPositive), Confidence: domain.Ptr(0.9)}, nil)

	_, err := ws.SubmitSentiment(context.Background(), SentimentForm{Text: "great"})
	require.NoError(t, err)

	snap := ws.Snapshot()
	assert.NotNil(t, snap.Sentiment.Result)
	assert.Nil(t, snap.Campaigns.Result)
	assert.Nil(t, snap.SalesPitch.Result)
	assert.Nil(t, snap.Insights.Result)
	assert.Nil(t, snap.LeadScoring.Result)
	assert.Nil(t, snap.CompetitorAnalysis.Result)
}

func TestService_Sessions(t *testing.T) {
	service, _ := newTestService(t)

	first, err := service.Create()
	require.NoError(t, err)
	_, err = service.Create()
	require.NoError(t, err)

	_, err = service.Create()
	assert.ErrorIs(t, err, ErrSessionLimitReached)

	got, err := service.Get(first.ID())
	require.NoError(t, err)
	assert.Same(t, first, got)

	require.NoError(t, service.Delete(first.ID()))
	_, err = service.Get(first.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, service.Delete(first.ID()), ErrSessionNotFound)
	assert.Equal(t, 1, service.Count())
}

func TestService_EvictIdle(t *testing.T) {
	service, _ := newTestService(t)
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	idle, err := service.Create()
	require.NoError(t, err)

	now = now.Add(90 * time.Minute)
	active, err := service.Create()
	require.NoError(t, err)

	now = now.Add(45 * time.Minute)
	evicted := service.EvictIdle(time.Hour)

	assert.Equal(t, 1, evicted)
	_, err = service.Get(idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = service.Get(active.ID())
	assert.NoError(t, err)
}

func TestService_ReadingKeepsSessionActive(t *testing.T) {
	service, _ := newTestService(t)
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	ws, err := service.Create()
	require.NoError(t, err)

	// só leitura, a cada 30 minutos, por 2 horas
	for i := 0; i < 4; i++ {
		now = now.Add(30 * time.Minute)
		got, err := service.Get(ws.ID())
		require.NoError(t, err)
		got.Snapshot()
	}

	assert.Equal(t, 0, service.EvictIdle(time.Hour))
	_, err = service.Get(ws.ID())
	assert.NoError(t, err)
}

func TestReplaceLeads(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	snap := ws.ReplaceLeads([]domain.Lead{{Name: "A", Budget: 10}, {Name: "B"}})
	assert.Equal(t, []domain.Lead{{Name: "A", Budget: 10}, {Name: "B"}}, snap.Leads)

	snap = ws.ReplaceLeads(nil)
	assert.Equal(t, []domain.Lead{{}}, snap.Leads)
}

func TestService_CreateFailsWhenIDGenerationFails(t *testing.T) {
	service, _ := newTestService(t)
	service.newID = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := service.Create()

	assert.ErrorIs(t, err, ErrGenerateID)
}
