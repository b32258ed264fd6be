package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/internal/domain"
)

// StatusChecker consulta a rota de status do backend
type StatusChecker interface {
	GetBackendStatus(ctx context.Context) (*domain.BackendStatus, error)
}

// ProbeResult é o resultado da última verificação do backend
type ProbeResult struct {
	Healthy   bool      `json:"healthy"`
	Status    string    `json:"status,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
	LatencyMs int64     `json:"latency_ms"`
}

// BackendHealthProbe verifica periodicamente se o backend MarketMind responde
type BackendHealthProbe struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	enabled      bool
	checker      StatusChecker
	now          func() time.Time

	mu      sync.Mutex
	running bool
	last    *ProbeResult
}

func NewBackendHealthProbe(checker StatusChecker, appConfig *config.Config) *BackendHealthProbe {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.BackendHealthProbe.CronSchedule,
		"enabled":       appConfig.BackendHealthProbe.Enabled,
	}).Info("backend health probe configuration loaded")

	return &BackendHealthProbe{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.BackendHealthProbe.CronSchedule,
		enabled:      appConfig.BackendHealthProbe.Enabled,
		checker:      checker,
		now:          time.Now,
	}
}

// Start agenda a verificação e para o agendador quando ctx for cancelado
func (p *BackendHealthProbe) Start(ctx context.Context) error {
	if !p.enabled {
		logrus.Info("backend health probe disabled by configuration")
		return nil
	}

	_, err := p.scheduler.Cron(p.cronSchedule).Do(func() {
		p.check(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling backend health probe: %w", err)
	}

	p.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping backend health probe")
		p.scheduler.Stop()
	}()

	return nil
}

// CheckNow executa uma verificação imediata. Se outra já estiver em
// andamento, devolve o último resultado conhecido.
func (p *BackendHealthProbe) CheckNow(ctx context.Context) ProbeResult {
	if result, ran := p.check(ctx); ran {
		return result
	}
	if last := p.LastResult(); last != nil {
		return *last
	}
	return ProbeResult{}
}

// LastResult devolve uma cópia do último resultado, ou nil se nunca verificou
func (p *BackendHealthProbe) LastResult() *ProbeResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last == nil {
		return nil
	}
	result := *p.last
	return &result
}

func (p *BackendHealthProbe) GetStatus() map[string]any {
	return map[string]any{
		"enabled":     p.enabled,
		"cron":        p.cronSchedule,
		"last_result": p.LastResult(),
	}
}

func (p *BackendHealthProbe) check(ctx context.Context) (ProbeResult, bool) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		logrus.Debug("backend health probe already running, skipping")
		return ProbeResult{}, false
	}
	p.running = true
	p.mu.Unlock()

	startTime := p.now()
	status, err := p.checker.GetBackendStatus(ctx)
	finishedAt := p.now()

	result := ProbeResult{
		Healthy:   err == nil,
		CheckedAt: finishedAt,
		LatencyMs: finishedAt.Sub(startTime).Milliseconds(),
	}
	if err != nil {
		result.Error = err.Error()
		logrus.WithError(err).Warn("backend health probe: backend unreachable")
	} else if status != nil {
		result.Status = status.Status
		logrus.WithField("status", status.Status).Debug("backend health probe: backend healthy")
	}

	p.mu.Lock()
	p.running = false
	p.last = &result
	p.mu.Unlock()

	return result, true
}
