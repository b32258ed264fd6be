package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmind-gateway/internal/config"
)

// IdleEvicter remove sessões sem atividade
type IdleEvicter interface {
	EvictIdle(maxIdle time.Duration) int
}

// SessionSweeper remove periodicamente os workspaces ociosos
type SessionSweeper struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	maxIdle      time.Duration
	evicter      IdleEvicter
}

func NewSessionSweeper(evicter IdleEvicter, appConfig *config.Config) *SessionSweeper {
	return &SessionSweeper{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.Workspace.SweepCron,
		maxIdle:      appConfig.Workspace.SessionIdleTTL,
		evicter:      evicter,
	}
}

func (s *SessionSweeper) Start(ctx context.Context) error {
	if s.maxIdle <= 0 {
		logrus.Info("session sweeper disabled: WORKSPACE_SESSION_IDLE_TTL is not positive")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(s.Sweep)
	if err != nil {
		return fmt.Errorf("error scheduling session sweeper: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep remove as sessões ociosas e devolve quantas foram removidas
func (s *SessionSweeper) Sweep() int {
	evicted := s.evicter.EvictIdle(s.maxIdle)
	if evicted > 0 {
		logrus.WithFields(logrus.Fields{
			"evicted":  evicted,
			"max_idle": s.maxIdle.String(),
		}).Info("session sweeper: idle workspaces removed")
	}
	return evicted
}
