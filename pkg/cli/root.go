// Package cli implements riskctl, the command-line front end for scoring
// risk assessments and producing export workbooks without the web server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = PrintJSON(os.Stdout, map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		output       string
		taxonomyFile string
	)

	rootCmd := &cobra.Command{
		Use:           "riskctl",
		Short:         "Risk assessment CLI",
		Long:          "Score risks as probability × frequency × severity, browse the rating scales and selectable lists, and export assessment workbooks.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The user config file is optional.
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{}
			}

			// Apply precedence: flag > env > config file > default
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("RISKCTL_OUTPUT"); v != "" {
					output = v
				} else if cfg.Output != "" {
					output = cfg.Output
				}
			}
			if !cmd.Flags().Changed("taxonomy") {
				if v := os.Getenv("RISKCTL_TAXONOMY"); v != "" {
					taxonomyFile = v
				} else if cfg.TaxonomyFile != "" {
					taxonomyFile = cfg.TaxonomyFile
				}
			}
			// Write resolved values back so subcommands read them from the flags.
			_ = cmd.Root().PersistentFlags().Set("output", output)
			_ = cmd.Root().PersistentFlags().Set("taxonomy", taxonomyFile)

			return validateOutputFormat(output)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVar(&taxonomyFile, "taxonomy", "", "Taxonomy YAML file (default: built-in lists)")

	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newRatingsCmd())
	rootCmd.AddCommand(newBracketsCmd())
	rootCmd.AddCommand(newTaxonomyCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Shell completions
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
