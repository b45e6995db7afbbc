package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"risk-demo/internal/taxonomy"
)

// getOutputFormat returns the effective output format from the root command's persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("output")
	return v
}

func validateOutputFormat(output string) error {
	if output != "" && output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

// loadTaxonomy returns the taxonomy named by --taxonomy, or the built-in one.
func loadTaxonomy(cmd *cobra.Command) (*taxonomy.Taxonomy, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("taxonomy")
	if path == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	return tax, nil
}
