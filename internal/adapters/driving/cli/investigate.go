package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/maude-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/maude-cli/internal/adapters/driven/output"
	"github.com/custodia-labs/maude-cli/internal/adapters/driven/report/htmlreport"
	"github.com/custodia-labs/maude-cli/internal/adapters/driven/report/xlsxreport"
	"github.com/custodia-labs/maude-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/maude-cli/internal/config"
	"github.com/custodia-labs/maude-cli/internal/connectors/openfda"
	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
	"github.com/custodia-labs/maude-cli/internal/core/services"
	"github.com/custodia-labs/maude-cli/internal/filters"
	"github.com/custodia-labs/maude-cli/internal/logger"
	"github.com/custodia-labs/maude-cli/internal/normalisers/deviceevent"
)

// now is overridable for tests.
var now = time.Now

// loadConfig reads the config file named by --config and applies
// environment overrides.
func loadConfig() (config.Config, *file.ConfigStore, error) {
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := config.Load(store)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, store, nil
}

// runInvestigation performs one complete run: it creates the run directory,
// investigates themes, records the run in the archive and prints a summary.
func runInvestigation(cmd *cobra.Command, themes []domain.Theme) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := output.Create(cfg.OutputRoot, now())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := dir.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	runID := uuid.NewString()
	log := dir.Logger(cmd.ErrOrStderr(), verbose).With("run_id", runID)
	defer func() { _ = log.Sync() }()

	log.Section("Run started")
	log.Info("Running the openFDA device API investigation into AI-driven medical devices")
	log.Info("Writing results to %s", dir.Path())
	log.Debug("Base URL %s, page delay %s, problem type mode %s", cfg.BaseURL, cfg.PageDelay, cfg.ProblemTypeMode)

	archive, err := sqlite.NewArchive(dir.Path())
	if err != nil {
		return fmt.Errorf("open run archive: %w", err)
	}
	defer archive.Close()

	run := domain.Run{ID: runID, StartedAt: dir.StartedAt(), Themes: themes, Dir: dir.Path()}
	if err := archive.BeginRun(ctx, run); err != nil {
		return err
	}

	investigation, err := newInvestigation(cfg, dir.Path(), archive, log)
	if err != nil {
		return err
	}

	reports, runErr := investigation.Investigate(ctx, themes...)

	// Record the outcome even when the run was interrupted.
	if err := archive.FinishRun(context.WithoutCancel(ctx), now(), runErr); err != nil {
		log.Warn("Could not record run outcome: %v", err)
	}

	printSummary(cmd.OutOrStdout(), dir.Path(), reports, runErr)

	if runErr != nil {
		log.Error("Run failed: %v", runErr)
		return runErr
	}
	log.Section("Run finished")
	return nil
}

// newInvestigation wires the investigation service from configuration.
func newInvestigation(
	cfg config.Config,
	dir string,
	archive driven.RunArchive,
	log *logger.Logger,
) (*services.Investigation, error) {
	client := openfda.NewClient(openfda.ClientConfig{
		Timeout:   cfg.Timeout,
		APIKey:    cfg.APIKey,
		UserAgent: openfda.DefaultUserAgent + "/" + version,
	})
	pipeline := services.NewPipeline(
		openfda.Queries{BaseURL: cfg.BaseURL},
		client,
		openfda.NewPacer(cfg.PageDelay),
		deviceevent.New(),
		log,
	)

	registry := filters.NewRegistry()
	filters.RegisterDefaults(registry)
	stageConfig := map[string]any{
		"problem_type_mode": string(cfg.ProblemTypeMode),
	}

	chains := make(map[domain.Theme]driven.FilterChain, len(domain.AllThemes()))
	for _, theme := range domain.AllThemes() {
		chain, err := registry.BuildChain(services.FlowStages(theme), stageConfig)
		if err != nil {
			return nil, fmt.Errorf("build %s filters: %w", theme.ID(), err)
		}
		chains[theme] = chain
	}

	writers := []driven.ReportWriter{
		htmlreport.New(dir),
		xlsxreport.New(dir),
		archive,
	}

	return services.NewInvestigation(pipeline, chains, writers, cfg.HighlightTerms, log), nil
}
