package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/maude-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/maude-cli/internal/config"
	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/filters"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Shows the effective configuration or writes a value to the config file.

Settings are read from the config file (--config, default ./maude.toml), then
overridden by MAUDE_* environment variables or a .env file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a value to the config file",
	Long: `Writes a value to the config file.

Keys:
  api.base_url               openFDA device event endpoint
  api.key                    openFDA API key
  api.timeout_seconds        per-request timeout
  api.page_delay_seconds     pause between page requests
  output.root                directory holding run directories
  report.highlight_terms     terms to highlight, separated by "|"
  filters.problem_type_mode  "flag" or "filter"`,
	Example: `  maude config set api.page_delay_seconds 5
  maude config set report.highlight_terms "machine learning| ai "`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, store, err := loadConfig()
	if err != nil {
		return err
	}

	cmd.Printf("Config file: %s\n\n", store.Path())
	values := cfg.Values()
	for _, key := range config.Keys {
		cmd.Printf("%-26s %s\n", key, values[key])
	}

	var unknown []string
	for _, key := range store.Keys() {
		if !slices.Contains(config.Keys, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		cmd.Printf("\nIgnored unknown keys: %s\n", strings.Join(unknown, ", "))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	value, err := parseConfigValue(key, raw)
	if err != nil {
		return err
	}

	// The store is opened without resolving the config, so a file holding
	// an invalid value can still be repaired.
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	cmd.Printf("Set %s in %s\n", key, store.Path())
	return nil
}

// parseConfigValue converts a command line value to the type stored under
// key.
func parseConfigValue(key, raw string) (any, error) {
	if !slices.Contains(config.Keys, key) {
		return nil, fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	switch key {
	case config.KeyTimeoutSeconds, config.KeyPageDelaySeconds:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s must be a whole number of seconds", domain.ErrInvalidInput, key)
		}
		return n, nil
	case config.KeyHighlightTerms:
		return strings.Split(raw, "|"), nil
	case config.KeyProblemTypeMode:
		mode, err := filters.ParseProblemTypeMode(raw)
		if err != nil {
			return nil, err
		}
		return string(mode), nil
	default:
		return raw, nil
	}
}
