// Package cli provides the maude command line interface.
//
// Running maude with no arguments investigates every theme in order and
// writes the reports to a new run directory. Subcommands restrict the run
// to chosen themes, list the themes and manage the config file.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

// version is set at build time through SetVersion.
var version = "dev"

// Persistent flags.
var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "maude",
	Short: "Investigate openFDA medical device adverse event reports",
	Long: `maude searches the openFDA device adverse event API for reports that
mention artificial intelligence, machine learning or algorithms, filters
them, and writes an HTML report and a spreadsheet per theme.

Each run writes into investigation_results/run_<timestamp>/ together with an
audit trail of every query made.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInvestigation(cmd, domain.AllThemes())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the TOML config file (default ./maude.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"mirror audit trail entries to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Cancelling ctx stops a run between
// requests.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
