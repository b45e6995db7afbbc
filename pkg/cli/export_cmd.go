package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"risk-demo/internal/domain"
	"risk-demo/internal/export"
	"risk-demo/internal/service/assessment"
	"risk-demo/internal/session"
)

// exportInput is the YAML document read by `riskctl export`.
type exportInput struct {
	Assessments []domain.CreateAssessmentRequest `yaml:"assessments"`
}

type exportSummary struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
	Bytes   int    `json:"bytes"`
}

func newExportCmd() *cobra.Command {
	var (
		input string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Score a YAML list of assessments and write the Excel workbook",
		Long: `Read assessments from a YAML file, validate and score each one against
the taxonomy, and write them to an .xlsx workbook with one row per assessment.

Input format:

  assessments:
    - department: Finans
      risk: Finansal Risk
      valueChainStep: Operasyonlar
      probability: 6
      frequency: 6
      severity: 10`,
		Example: `  riskctl export --input assessments.yaml
  riskctl export --input assessments.yaml --out report.xlsx --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reqs, err := readExportInput(input)
			if err != nil {
				return err
			}
			tax, err := loadTaxonomy(cmd)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			n, err := scoreAndExport(cmd.Context(), assessment.NewService(tax, nil, nil), reqs, &buf)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil { //nolint:gosec // workbook is meant to be shared
				return fmt.Errorf("write %s: %w", out, err)
			}

			summary := exportSummary{Path: out, Records: n, Bytes: buf.Len()}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, summary)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Wrote %d assessments to %s\n", summary.Records, summary.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML file with assessments")
	cmd.Flags().StringVar(&out, "out", export.FileName, "Output workbook path")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func readExportInput(path string) ([]domain.CreateAssessmentRequest, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var in exportInput
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return in.Assessments, nil
}

// scoreAndExport runs every request through the assessment service in one
// throwaway session and writes the workbook to w.
func scoreAndExport(ctx context.Context, svc *assessment.Service, reqs []domain.CreateAssessmentRequest, w io.Writer) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sess := session.NewStore(0, slog.New(slog.DiscardHandler)).GetOrCreate("riskctl")
	for i, req := range reqs {
		if _, err := svc.Create(ctx, sess, req); err != nil {
			return 0, fmt.Errorf("assessment %d: %w", i+1, err)
		}
	}
	return svc.Export(ctx, sess, w)
}
