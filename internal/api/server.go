package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/internal/api/handler"
	"github.com/vfg2006/marketmind-gateway/internal/api/handler/router"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/internal/scheduler"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	workspaceService workspace.WorkspaceService,
	dashboard marketmind.Dashboard,
	healthProbe *scheduler.BackendHealthProbe,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(workspaceService)...),
		router.WithRoutes(handler.Sessions(workspaceService)...),
		router.WithRoutes(handler.Pages(workspaceService)...),
		router.WithRoutes(handler.Leads(workspaceService)...),
		router.WithRoutes(handler.Dashboard(dashboard)...),
		router.WithRoutes(handler.Admin(dashboard)...),
		router.WithRoutes(handler.BackendStatus(healthProbe)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CorsAllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	// WriteTimeout acompanha o timeout do backend: as operações de IA podem
	// levar até MARKETMIND_TIMEOUT para responder
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      config.MarketMind.Timeout + 5*time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
