package cli

import (
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mmclient"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

// app é o estado compartilhado pelos subcomandos depois do carregamento da configuração
type app struct {
	out        io.Writer
	baseURL    string
	timeout    time.Duration
	loadConfig func() (*config.Config, error)

	cfg        *config.Config
	integrator *marketmind.MarketMindIntegrator
}

// NewRootCommand monta o comando marketmind com todos os subcomandos.
// A saída de sucesso vai para out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{
		out:        out,
		loadConfig: config.NewConfig,
	}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "marketmind",
		Short:         "MarketMind command line client",
		Long:          "Calls the MarketMind AI backend operations and prints the typed responses as JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "MarketMind backend base URL (overrides MARKETMIND_BASE_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "request timeout (overrides MARKETMIND_TIMEOUT)")

	root.AddCommand(
		a.campaignCommand(),
		a.pitchCommand(),
		a.insightsCommand(),
		a.sentimentCommand(),
		a.scoreLeadsCommand(),
		a.competitorCommand(),
		a.statusCommand(),
		a.dashboardCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if a.baseURL != "" {
		cfg.MarketMind.BaseURL = strings.TrimRight(a.baseURL, "/")
	}
	if a.timeout > 0 {
		cfg.MarketMind.Timeout = a.timeout
	}
	log.Configure(cfg.App.LogLevel)

	a.cfg = cfg
	a.integrator = marketmind.New(cfg, mmclient.NewClient(cfg))
	return nil
}

// session abre um workspace de uso único para o comando
func (a *app) session() (*workspace.Workspace, error) {
	return workspace.NewService(a.cfg, a.integrator).Create()
}
