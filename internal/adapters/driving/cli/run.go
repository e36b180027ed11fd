package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

var runCmd = &cobra.Command{
	Use:   "run [theme...]",
	Short: "Investigate selected themes",
	Long: `Runs the investigation for the given themes, in the order given.
With no themes, every theme runs, exactly as running maude with no arguments.

Use "maude themes" to list theme IDs.`,
	Example: `  maude run algorithm
  maude run ai diagnostic-algorithm`,
	ValidArgsFunction: completeThemes,
	RunE:              runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	themes, err := parseThemes(args)
	if err != nil {
		return err
	}
	return runInvestigation(cmd, themes)
}

// parseThemes parses theme IDs, rejecting unknown and repeated themes.
// No IDs means every theme.
func parseThemes(ids []string) ([]domain.Theme, error) {
	if len(ids) == 0 {
		return domain.AllThemes(), nil
	}

	seen := make(map[domain.Theme]bool, len(ids))
	themes := make([]domain.Theme, 0, len(ids))
	for _, id := range ids {
		theme, err := domain.ParseTheme(id)
		if err != nil {
			return nil, err
		}
		if seen[theme] {
			return nil, fmt.Errorf("%w: theme %q given twice", domain.ErrInvalidInput, id)
		}
		seen[theme] = true
		themes = append(themes, theme)
	}
	return themes, nil
}

func completeThemes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	themes := domain.AllThemes()
	ids := make([]string, len(themes))
	for i, t := range themes {
		ids[i] = t.ID()
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
