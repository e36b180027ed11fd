// Package config resolves the run configuration.
//
// Values come from three layers, later layers winning:
//
//  1. Built-in defaults
//  2. The TOML config file (dot-notation keys, e.g. "api.base_url")
//  3. MAUDE_* environment variables, optionally loaded from a .env file
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/maude-cli/internal/adapters/driven/output"
	"github.com/custodia-labs/maude-cli/internal/adapters/driven/report/htmlreport"
	"github.com/custodia-labs/maude-cli/internal/connectors/openfda"
	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
	"github.com/custodia-labs/maude-cli/internal/filters"
)

// Config file keys.
const (
	KeyBaseURL          = "api.base_url"
	KeyAPIKey           = "api.key"
	KeyTimeoutSeconds   = "api.timeout_seconds"
	KeyPageDelaySeconds = "api.page_delay_seconds"
	KeyOutputRoot       = "output.root"
	KeyHighlightTerms   = "report.highlight_terms"
	KeyProblemTypeMode  = "filters.problem_type_mode"
)

// Keys lists every config file key in display order.
var Keys = []string{
	KeyBaseURL,
	KeyAPIKey,
	KeyTimeoutSeconds,
	KeyPageDelaySeconds,
	KeyOutputRoot,
	KeyHighlightTerms,
	KeyProblemTypeMode,
}

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAUDE_"

// termSeparator splits MAUDE_REPORT_HIGHLIGHT_TERMS. Terms may contain
// spaces, so a comma-free separator is used.
const termSeparator = "|"

// Config is the resolved run configuration.
type Config struct {
	// BaseURL is the openFDA device event endpoint.
	BaseURL string

	// APIKey is sent with every request when set. It never appears in
	// reports.
	APIKey string

	// Timeout bounds each page request.
	Timeout time.Duration

	// PageDelay is the minimum spacing between page requests.
	PageDelay time.Duration

	// OutputRoot holds the run directories.
	OutputRoot string

	// HighlightTerms are marked in HTML comment fields.
	HighlightTerms []string

	// ProblemTypeMode selects flag-only or flag-and-filter problem typing.
	ProblemTypeMode filters.ProblemTypeMode
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BaseURL:         openfda.DefaultBaseURL,
		Timeout:         openfda.DefaultTimeout,
		PageDelay:       openfda.DefaultPageDelay,
		OutputRoot:      output.DefaultRoot,
		HighlightTerms:  append([]string(nil), htmlreport.DefaultHighlightTerms...),
		ProblemTypeMode: filters.FlagOnly,
	}
}

// Load resolves the configuration from store and the environment. A .env
// file in the working directory is loaded first if present; variables
// already set in the environment are not overridden by it. A nil store
// skips the file layer.
func Load(store driven.ConfigStore) (Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if store != nil {
		if err := cfg.applyStore(store); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EnvName returns the environment variable overriding a config key,
// e.g. "api.base_url" becomes MAUDE_API_BASE_URL.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (c *Config) applyStore(store driven.ConfigStore) error {
	if v := store.GetString(KeyBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := store.GetString(KeyAPIKey); v != "" {
		c.APIKey = v
	}
	if _, ok := store.Get(KeyTimeoutSeconds); ok {
		c.Timeout = seconds(store.GetInt(KeyTimeoutSeconds))
	}
	if _, ok := store.Get(KeyPageDelaySeconds); ok {
		c.PageDelay = seconds(store.GetInt(KeyPageDelaySeconds))
	}
	if v := store.GetString(KeyOutputRoot); v != "" {
		c.OutputRoot = v
	}
	if _, ok := store.Get(KeyHighlightTerms); ok {
		c.HighlightTerms = store.GetStringSlice(KeyHighlightTerms)
	}
	if v := store.GetString(KeyProblemTypeMode); v != "" {
		mode, err := filters.ParseProblemTypeMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyProblemTypeMode, err)
		}
		c.ProblemTypeMode = mode
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvName(KeyBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := getenv(EnvName(KeyAPIKey)); v != "" {
		c.APIKey = v
	}
	if v := getenv(EnvName(KeyTimeoutSeconds)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvName(KeyTimeoutSeconds), err)
		}
		c.Timeout = seconds(n)
	}
	if v := getenv(EnvName(KeyPageDelaySeconds)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvName(KeyPageDelaySeconds), err)
		}
		c.PageDelay = seconds(n)
	}
	if v := getenv(EnvName(KeyOutputRoot)); v != "" {
		c.OutputRoot = v
	}
	if v := getenv(EnvName(KeyHighlightTerms)); v != "" {
		c.HighlightTerms = strings.Split(v, termSeparator)
	}
	if v := getenv(EnvName(KeyProblemTypeMode)); v != "" {
		mode, err := filters.ParseProblemTypeMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvName(KeyProblemTypeMode), err)
		}
		c.ProblemTypeMode = mode
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: %s is empty", domain.ErrInvalidInput, KeyBaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, KeyTimeoutSeconds)
	}
	if c.PageDelay < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, KeyPageDelaySeconds)
	}
	if c.OutputRoot == "" {
		return fmt.Errorf("%w: %s is empty", domain.ErrInvalidInput, KeyOutputRoot)
	}
	return nil
}

// Values returns the configuration as config file key/value pairs, with
// the API key masked.
func (c Config) Values() map[string]string {
	key := ""
	if c.APIKey != "" {
		key = "********"
	}
	return map[string]string{
		KeyBaseURL:          c.BaseURL,
		KeyAPIKey:           key,
		KeyTimeoutSeconds:   strconv.Itoa(int(c.Timeout / time.Second)),
		KeyPageDelaySeconds: strconv.Itoa(int(c.PageDelay / time.Second)),
		KeyOutputRoot:       c.OutputRoot,
		KeyHighlightTerms:   strings.Join(quoteAll(c.HighlightTerms), ", "),
		KeyProblemTypeMode:  string(c.ProblemTypeMode),
	}
}

func quoteAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strconv.Quote(t)
	}
	return out
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
