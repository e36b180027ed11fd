package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driving"
	"github.com/custodia-labs/maude-cli/internal/logger"
)

// Ensure Investigation implements the interface.
var _ driving.Investigator = (*Investigation)(nil)

// ThemeRunner produces the deduplicated, sorted table for one theme.
// *Pipeline is the production implementation.
type ThemeRunner interface {
	Run(ctx context.Context, theme domain.Theme) (domain.Table, domain.FetchStats, error)
}

// Investigation runs the fixed report flow of each theme: fetch, filter,
// label, write.
type Investigation struct {
	runner         ThemeRunner
	chains         map[domain.Theme]driven.FilterChain
	writers        []driven.ReportWriter
	highlightTerms []string
	log            *logger.Logger

	// now is overridable for tests.
	now func() time.Time
}

// NewInvestigation creates an investigation service.
// Themes without a chain are reported unfiltered. A nil logger discards
// output.
func NewInvestigation(
	runner ThemeRunner,
	chains map[domain.Theme]driven.FilterChain,
	writers []driven.ReportWriter,
	highlightTerms []string,
	log *logger.Logger,
) *Investigation {
	if log == nil {
		log = logger.Nop()
	}
	return &Investigation{
		runner:         runner,
		chains:         chains,
		writers:        writers,
		highlightTerms: highlightTerms,
		log:            log,
		now:            time.Now,
	}
}

// Investigate runs each theme in the order given. With no themes it runs
// all of them in their canonical order. It stops at the first failing
// theme and returns the reports completed before it.
func (i *Investigation) Investigate(ctx context.Context, themes ...domain.Theme) ([]*domain.Report, error) {
	if len(themes) == 0 {
		themes = domain.AllThemes()
	}
	for _, theme := range themes {
		if !theme.Valid() {
			return nil, fmt.Errorf("%w: %d", domain.ErrUnknownTheme, int(theme))
		}
	}

	reports := make([]*domain.Report, 0, len(themes))
	for _, theme := range themes {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := i.investigate(ctx, theme)
		if err != nil {
			return reports, fmt.Errorf("investigate %s: %w", theme.ID(), err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (i *Investigation) investigate(ctx context.Context, theme domain.Theme) (*domain.Report, error) {
	f := flowFor(theme)
	log := i.log.With("theme", theme.ID())

	log.Section(f.title)
	log.Info("%s", f.announce)

	table, stats, err := i.runner.Run(ctx, theme)
	if err != nil {
		return nil, err
	}

	atLeast := stats.ReportedTotal > domain.MaxResults
	criteria := []string{f.opening(table.Len(), atLeast)}

	if chain := i.chains[theme]; chain != nil {
		var stageCriteria []string
		table, stageCriteria = chain.Apply(table)
		criteria = append(criteria, stageCriteria...)
	}
	log.Info("%d rows remain after filtering", table.Len())

	report := &domain.Report{
		Theme:          theme,
		Title:          f.title,
		Description:    f.description,
		Criteria:       criteria,
		HighlightTerms: i.highlightTerms,
		Table:          table.WithLabels(theme.LabelPrefix()),
		Stats:          stats,
		GeneratedAt:    i.now(),
	}

	for _, w := range i.writers {
		path, err := w.Write(ctx, report)
		if err != nil {
			return nil, fmt.Errorf("write %s report: %w", w.Name(), err)
		}
		log.Info("Wrote %s report to %s", w.Name(), path)
	}

	return report, nil
}
