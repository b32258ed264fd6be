package workspace

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/pkg/utils"
)

type WorkspaceService interface {
	Create() (*Workspace, error)
	Get(id string) (*Workspace, error)
	Delete(id string) error
	EvictIdle(maxIdle time.Duration) int
	Count() int
}

// Service mantém os workspaces das sessões abertas em memória
type Service struct {
	ops         marketmind.Operations
	maxSessions int
	newID       func() (string, error)
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Workspace
}

func NewService(cfg *config.Config, ops marketmind.Operations) *Service {
	return &Service{
		ops:         ops,
		maxSessions: cfg.Workspace.MaxSessions,
		newID:       utils.GenerateID,
		now:         time.Now,
		sessions:    make(map[string]*Workspace),
	}
}

func (s *Service) Create() (*Workspace, error) {
	id, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return nil, ErrSessionLimitReached
	}

	ws := newWorkspace(id, s.ops, s.now)
	s.sessions[id] = ws

	logrus.WithField("session_id", id).Debug("workspace: session created")
	return ws, nil
}

func (s *Service) Get(id string) (*Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ws, nil
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// EvictIdle remove as sessões sem atividade há mais de maxIdle e devolve quantas saíram
func (s *Service) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, ws := range s.sessions {
		if ws.lastActive().Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
