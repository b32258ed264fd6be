package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mmclient"
	"github.com/vfg2006/marketmind-gateway/internal/api"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/internal/scheduler"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	if !log.Configure(cfg.App.LogLevel) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"base_url": cfg.MarketMind.BaseURL,
		"timeout":  cfg.MarketMind.Timeout.String(),
	}).Info("Backend MarketMind configurado")

	client := mmclient.NewClient(cfg)
	integrator := marketmind.New(cfg, client)

	workspaceService := workspace.NewService(cfg, integrator)

	healthProbe := scheduler.NewBackendHealthProbe(integrator, cfg)
	if err := healthProbe.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a verificação de saúde do backend")
	}

	sessionSweeper := scheduler.NewSessionSweeper(workspaceService, cfg)
	if err := sessionSweeper.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a limpeza de sessões ociosas")
	}

	server, err := api.New(cfg, workspaceService, integrator, healthProbe)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
