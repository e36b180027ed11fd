package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/maude-cli/internal/adapters/driving/styles"
	"github.com/custodia-labs/maude-cli/internal/connectors/openfda"
	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/services"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the investigation themes",
	Long: `Lists every theme with its result label prefix, output file name and
the first query URL it sends to openFDA.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	queries := openfda.Queries{BaseURL: cfg.BaseURL}
	s := styles.DefaultStyles()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(s.Theme().Border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "PREFIX", "FILE", "TITLE")
	for _, theme := range domain.AllThemes() {
		t.Row(theme.ID(), theme.LabelPrefix(), theme.BaseFileName(), services.FlowTitle(theme))
	}
	cmd.Println(t.Render())

	cmd.Println()
	for _, theme := range domain.AllThemes() {
		cmd.Printf("%s %s\n", s.Label.Render(theme.ID()+":"), queries.QueryURL(theme, 0))
	}
	return nil
}
