package cli

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/marketmind-gateway/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseLead lê um lead no formato nome:engajamento:orçamento. O nome pode conter ':'.
func parseLead(raw string) (domain.Lead, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return domain.Lead{}, fmt.Errorf("invalid lead %q: expected name:engagement:budget", raw)
	}

	n := len(parts)
	engagement, err := parseNumber(parts[n-2])
	if err != nil {
		return domain.Lead{}, fmt.Errorf("invalid engagement in lead %q: %w", raw, err)
	}
	budget, err := parseNumber(parts[n-1])
	if err != nil {
		return domain.Lead{}, fmt.Errorf("invalid budget in lead %q: %w", raw, err)
	}

	return domain.Lead{
		Name:       strings.Join(parts[:n-2], ":"),
		Engagement: engagement,
		Budget:     budget,
	}, nil
}

// parseNumber aceita apenas números finitos; NaN e Inf não são serializáveis em JSON
func parseNumber(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return value, nil
}

func readLeadsFile(path string) ([]domain.Lead, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var leads []domain.Lead
	if err := json.Unmarshal(raw, &leads); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return leads, nil
}

func (a *app) scoreLeadsCommand() *cobra.Command {
	var (
		rawLeads  []string
		leadsFile string
	)

	cmd := &cobra.Command{
		Use:   "score-leads",
		Short: "Score a list of leads",
		Example: `  marketmind score-leads --lead "Acme Corp:80:5000" --lead "Beta LLC:20:300"
  marketmind score-leads --file leads.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var leads []domain.Lead
			if leadsFile != "" {
				fromFile, err := readLeadsFile(leadsFile)
				if err != nil {
					return err
				}
				leads = append(leads, fromFile...)
			}
			for _, raw := range rawLeads {
				lead, err := parseLead(raw)
				if err != nil {
					return err
				}
				leads = append(leads, lead)
			}

			ws, err := a.session()
			if err != nil {
				return err
			}
			ws.ReplaceLeads(leads)

			page, err := ws.ScoreLeads(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(page.Result)
		},
	}

	cmd.Flags().StringArrayVar(&rawLeads, "lead", nil, "lead as name:engagement:budget (repeatable)")
	cmd.Flags().StringVar(&leadsFile, "file", "", "JSON file with an array of leads")
	return cmd
}
