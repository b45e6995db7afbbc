package cli

import (
	"os"

	"github.com/spf13/cobra"

	"risk-demo/internal/domain"
	"risk-demo/internal/scoring"
)

func newScoreCmd() *cobra.Command {
	var probability, frequency, severity float64

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one set of ratings",
		Long:  "Compute probability × frequency × severity and classify the result into a risk degree and financial impact bracket.",
		Example: `  riskctl score --probability 6 --frequency 6 --severity 10
  riskctl score -p 0.1 -f 3 -s 42.5 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !usableRatings(probability, frequency, severity) {
				return domain.ErrValidation(domain.MsgRatingsRequired)
			}
			result := scoring.Assess(probability, frequency, severity)
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, result)
			}
			bracket := scoring.Classify(result.RiskScore)
			PrintDetail(os.Stdout, map[string]interface{}{
				"probability":             formatNumber(result.Probability),
				"frequency":               formatNumber(result.Frequency),
				"severity":                formatNumber(result.Severity),
				"risk_score":              formatScore(result.RiskScore),
				"risk_degree":             result.RiskDegree + " (" + bracket.DisplayDegree + ")",
				"financial_impact":        result.FinancialImpact + " (" + bracket.DisplayImpact + ")",
				"probability_description": result.ProbabilityDescription,
				"frequency_description":   result.FrequencyDescription,
			})
			return nil
		},
	}

	cmd.Flags().Float64VarP(&probability, "probability", "p", 0, "Probability rating (0.1-10)")
	cmd.Flags().Float64VarP(&frequency, "frequency", "f", 0, "Frequency rating (0.1-10)")
	cmd.Flags().Float64VarP(&severity, "severity", "s", 0, "Severity rating (0.1-100)")
	_ = cmd.MarkFlagRequired("probability")
	_ = cmd.MarkFlagRequired("frequency")
	_ = cmd.MarkFlagRequired("severity")

	return cmd
}

// usableRatings applies the form's rule: every rating present and non-zero.
func usableRatings(probability, frequency, severity float64) bool {
	req := domain.CreateAssessmentRequest{
		Department: "-", Risk: "-", ValueChainStep: "-",
		Probability: probability, Frequency: frequency, Severity: severity,
	}
	return req.Validate() == nil
}
