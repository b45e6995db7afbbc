package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI defaults",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the saved defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "No configuration found at %s\n", ConfigPath())
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = fmt.Fprint(os.Stdout, string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var (
		output       string
		taxonomyFile string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save default output format and taxonomy file",
		Example: `  riskctl config set --default-output json
  riskctl config set --taxonomy-file ./taxonomy.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{}
			}
			if cmd.Flags().Changed("default-output") {
				if err := validateOutputFormat(output); err != nil {
					return err
				}
				cfg.Output = output
			}
			if cmd.Flags().Changed("taxonomy-file") {
				cfg.TaxonomyFile = taxonomyFile
			}
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stdout, "Saved %s\n", ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "default-output", "", "Default output format (table, json)")
	cmd.Flags().StringVar(&taxonomyFile, "taxonomy-file", "", "Default taxonomy YAML file")

	return cmd
}
