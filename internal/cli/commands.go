package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/utils"
)

func (a *app) print(v any) error {
	out, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, out)
	return err
}

// productCommand monta os comandos que recebem produto e público-alvo
func (a *app) productCommand(
	use, short string,
	run func(ws *workspace.Workspace, cmd *cobra.Command, form workspace.ProductForm) (any, error),
) *cobra.Command {
	var form workspace.ProductForm

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.session()
			if err != nil {
				return err
			}
			result, err := run(ws, cmd, form)
			if err != nil {
				return err
			}
			return a.print(result)
		},
	}

	cmd.Flags().StringVar(&form.Product, "product", "", "product or service name")
	cmd.Flags().StringVar(&form.Audience, "audience", "", "target audience")
	return cmd
}

func (a *app) campaignCommand() *cobra.Command {
	return a.productCommand("campaign", "Generate a marketing campaign",
		func(ws *workspace.Workspace, cmd *cobra.Command, form workspace.ProductForm) (any, error) {
			page, err := ws.SubmitCampaign(cmd.Context(), form)
			return page.Result, err
		})
}

func (a *app) pitchCommand() *cobra.Command {
	return a.productCommand("pitch", "Generate a sales pitch",
		func(ws *workspace.Workspace, cmd *cobra.Command, form workspace.ProductForm) (any, error) {
			page, err := ws.SubmitPitch(cmd.Context(), form)
			return page.Result, err
		})
}

func (a *app) insightsCommand() *cobra.Command {
	return a.productCommand("insights", "Get business insights",
		func(ws *workspace.Workspace, cmd *cobra.Command, form workspace.ProductForm) (any, error) {
			page, err := ws.SubmitInsights(cmd.Context(), form)
			return page.Result, err
		})
}

func (a *app) sentimentCommand() *cobra.Command {
	var form workspace.SentimentForm

	cmd := &cobra.Command{
		Use:   "sentiment",
		Short: "Analyze the sentiment of a text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.session()
			if err != nil {
				return err
			}
			page, err := ws.SubmitSentiment(cmd.Context(), form)
			if err != nil {
				return err
			}
			return a.print(page.Result)
		},
	}

	cmd.Flags().StringVar(&form.Text, "text", "", "text to analyze")
	return cmd
}

func (a *app) competitorCommand() *cobra.Command {
	var form workspace.CompetitorForm

	cmd := &cobra.Command{
		Use:   "competitor",
		Short: "Analyze a competitor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.session()
			if err != nil {
				return err
			}
			page, err := ws.SubmitCompetitor(cmd.Context(), form)
			if err != nil {
				return err
			}
			return a.print(page.Result)
		},
	}

	cmd.Flags().StringVar(&form.Competitor, "competitor", "", "competitor name")
	cmd.Flags().StringVar(&form.Industry, "industry", "", "industry")
	return cmd
}

func (a *app) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the backend is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.integrator.GetBackendStatus(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(status)
		},
	}
}

// dashboardCommand lê os painéis agregados do backend
func (a *app) dashboardCommand() *cobra.Command {
	readers := map[string]func(cmd *cobra.Command) (any, error){
		"summary": func(cmd *cobra.Command) (any, error) {
			return a.integrator.GetDashboardSummary(cmd.Context())
		},
		"lead-distribution": func(cmd *cobra.Command) (any, error) {
			return a.integrator.GetLeadDistribution(cmd.Context())
		},
		"campaign-performance": func(cmd *cobra.Command) (any, error) {
			return a.integrator.GetCampaignPerformance(cmd.Context())
		},
		"admin-metrics": func(cmd *cobra.Command) (any, error) {
			return a.integrator.GetAdminMetrics(cmd.Context())
		},
		"api-calls-daily": func(cmd *cobra.Command) (any, error) {
			return a.integrator.GetAPICallsDaily(cmd.Context())
		},
		"users": func(cmd *cobra.Command) (any, error) {
			return a.integrator.ListUsers(cmd.Context())
		},
		"revenue": func(cmd *cobra.Command) (any, error) {
			return a.integrator.GetRevenue(cmd.Context())
		},
	}

	return &cobra.Command{
		Use:       "dashboard <summary|lead-distribution|campaign-performance|admin-metrics|api-calls-daily|users|revenue>",
		Short:     "Read a dashboard or admin panel from the backend",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"summary", "lead-distribution", "campaign-performance", "admin-metrics", "api-calls-daily", "users", "revenue"},
		RunE: func(cmd *cobra.Command, args []string) error {
			read, ok := readers[args[0]]
			if !ok {
				return fmt.Errorf("unknown panel %q", args[0])
			}
			result, err := read(cmd)
			if err != nil {
				return err
			}
			return a.print(result)
		},
	}
}
