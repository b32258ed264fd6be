package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mmclient"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/internal/domain"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
)

// defaultConfig carrega só os valores padrão e o ambiente, sem .env
func defaultConfig() (*config.Config, error) {
	return config.Load(viper.New())
}

// backendStub responde um corpo fixo por rota e guarda os corpos recebidos
type backendStub struct {
	mu        sync.Mutex
	bodies    map[string]string
	responses map[string]string
}

func newBackendStub(t *testing.T, responses map[string]string) (*backendStub, string) {
	t.Helper()
	stub := &backendStub{bodies: map[string]string{}, responses: responses}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		stub.mu.Lock()
		stub.bodies[r.URL.Path] = string(body)
		stub.mu.Unlock()

		resp, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(server.Close)
	return stub, server.URL
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{out: &out, loadConfig: defaultConfig}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCampaignCommand(t *testing.T) {
	stub, url := newBackendStub(t, map[string]string{
		"/generate_campaign": `{"campaign":"Launch plan"}`,
	})

	out, err := execute(t, "campaign", "--base-url", url, "--product", "AI Analytics Platform", "--audience", "B2B SaaS companies")

	require.NoError(t, err)
	assert.JSONEq(t, `{"campaign":"Launch plan"}`, out)
	assert.JSONEq(t, `{"product":"AI Analytics Platform","audience":"B2B SaaS companies"}`, stub.bodies["/generate_campaign"])
}

func TestSentimentCommand_BlankTextDoesNotCallBackend(t *testing.T) {
	stub, url := newBackendStub(t, map[string]string{"/sentiment": `{"sentiment":"Positive","confidence":0.9}`})

	_, err := execute(t, "sentiment", "--base-url", url, "--text", "   ")

	var validationErr *workspace.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, workspace.PageSentiment, validationErr.Page)
	assert.Empty(t, stub.bodies)
}

func TestCompetitorCommand_BackendErrorIsTransportError(t *testing.T) {
	_, url := newBackendStub(t, map[string]string{})

	_, err := execute(t, "competitor", "--base-url", url, "--competitor", "Acme", "--industry", "Retail")

	transportErr, ok := mmclient.AsTransportError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	assert.Equal(t, "/competitor_analysis", transportErr.Path)
}

func TestScoreLeadsCommand(t *testing.T) {
	stub, url := newBackendStub(t, map[string]string{
		"/score_leads": `[{"name":"Acme Corp","score":88,"status":"Hot"},{"name":"Beta: LLC","score":10,"status":"Cold"}]`,
	})

	file := filepath.Join(t.TempDir(), "leads.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"name":"Acme Corp","engagement":80,"budget":5000}]`), 0o600))

	out, err := execute(t, "score-leads", "--base-url", url, "--file", file, "--lead", "Beta: LLC:20:300")

	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"name":"Acme Corp","engagement":80,"budget":5000},{"name":"Beta: LLC","engagement":20,"budget":300}]`,
		stub.bodies["/score_leads"])

	var results []domain.LeadScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, domain.LeadHot, results[0].Status)
}

func TestScoreLeadsCommand_WithoutLeadsIsValidationError(t *testing.T) {
	_, url := newBackendStub(t, map[string]string{})

	_, err := execute(t, "score-leads", "--base-url", url)

	assert.ErrorIs(t, err, workspace.ErrMissingRequiredData)
}

func TestParseLead(t *testing.T) {
	lead, err := parseLead("Acme:Corp:75.5:1200")
	require.NoError(t, err)
	assert.Equal(t, domain.Lead{Name: "Acme:Corp", Engagement: 75.5, Budget: 1200}, lead)

	_, err = parseLead("Acme:80")
	assert.Error(t, err)

	_, err = parseLead("Acme:high:100")
	assert.Error(t, err)

	for _, raw := range []string{"A:NaN:1", "A:1:Inf", "A:-Inf:1", "A:1:+inf"} {
		_, err = parseLead(raw)
		assert.Error(t, err, raw)
	}
}

func TestScoreLeadsCommand_NonFiniteValueDoesNotCallBackend(t *testing.T) {
	stub, url := newBackendStub(t, map[string]string{"/score_leads": `[]`})

	_, err := execute(t, "score-leads", "--base-url", url, "--lead", "A:NaN:1")

	require.Error(t, err)
	_, isTransport := mmclient.AsTransportError(err)
	assert.False(t, isTransport)
	assert.Empty(t, stub.bodies)
}

func TestStatusAndDashboardCommands(t *testing.T) {
	_, url := newBackendStub(t, map[string]string{
		"/":                            `{"status":"MarketMind AI Backend Running"}`,
		"/dashboard/lead-distribution": `{"hot":1,"warm":2,"cold":3}`,
	})

	out, err := execute(t, "status", "--base-url", url)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"MarketMind AI Backend Running"}`, out)

	out, err = execute(t, "dashboard", "lead-distribution", "--base-url", url)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hot":1,"warm":2,"cold":3}`, out)

	_, err = execute(t, "dashboard", "unknown", "--base-url", url)
	assert.Error(t, err)
}

func TestTimeoutFlagOverridesConfig(t *testing.T) {
	var out bytes.Buffer
	a := &app{out: &out, loadConfig: defaultConfig}
	root := a.rootCommand()
	root.SetArgs([]string{"status", "--base-url", "http://127.0.0.1:1/", "--timeout", "250ms"})
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http://127.0.0.1:1", a.cfg.MarketMind.BaseURL)
	assert.Equal(t, "250ms", a.cfg.MarketMind.Timeout.String())
}
