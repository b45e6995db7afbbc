package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newTaxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "List the selectable departments, risks and value-chain steps",
		Example: `  riskctl taxonomy
  riskctl taxonomy --taxonomy ./taxonomy.yaml --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tax, err := loadTaxonomy(cmd)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, tax)
			}
			sections := []struct {
				title  string
				values []string
			}{
				{"Departments", tax.Departments},
				{"Risks", tax.Risks},
				{"Value chain steps", tax.ValueChainSteps},
			}
			for i, s := range sections {
				if i > 0 {
					_, _ = fmt.Fprintln(os.Stdout)
				}
				rows := make([][]string, 0, len(s.values))
				for _, v := range s.values {
					rows = append(rows, []string{v})
				}
				PrintTable(os.Stdout, []string{s.title}, rows)
			}
			return nil
		},
	}
}
