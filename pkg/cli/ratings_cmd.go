package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"risk-demo/internal/scoring"
)

func newRatingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratings",
		Short: "List the described probability and frequency ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ratings := scoring.CanonicalRatings()
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, ratings)
			}
			rows := make([][]string, 0, len(ratings))
			for _, r := range ratings {
				rows = append(rows, []string{formatNumber(r.Value), r.Probability, r.Frequency})
			}
			PrintTable(os.Stdout, []string{"value", "probability", "frequency"}, rows)
			return nil
		},
	}
}

type bracketOutput struct {
	Above           *float64 `json:"above,omitempty"`
	FinancialImpact string   `json:"financial_impact"`
	RiskDegree      string   `json:"risk_degree"`
	DisplayImpact   string   `json:"display_impact"`
	DisplayDegree   string   `json:"display_degree"`
}

func newBracketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brackets",
		Short: "List the score classification brackets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			brackets := scoring.Brackets()
			if getOutputFormat(cmd) == "json" {
				out := make([]bracketOutput, 0, len(brackets))
				for _, b := range brackets {
					o := bracketOutput{
						FinancialImpact: b.Impact,
						RiskDegree:      b.Degree,
						DisplayImpact:   b.DisplayImpact,
						DisplayDegree:   b.DisplayDegree,
					}
					if b.Bounded {
						above := b.Above
						o.Above = &above
					}
					out = append(out, o)
				}
				return PrintJSON(os.Stdout, out)
			}
			rows := make([][]string, 0, len(brackets))
			for _, b := range brackets {
				threshold := "otherwise"
				if b.Bounded {
					threshold = "> " + formatNumber(b.Above)
				}
				rows = append(rows, []string{threshold, b.Degree, b.Impact, b.DisplayImpact})
			}
			PrintTable(os.Stdout, []string{"score", "degree", "impact", "display"}, rows)
			return nil
		},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
