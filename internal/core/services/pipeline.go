package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
	"github.com/custodia-labs/maude-cli/internal/logger"
)

// Pipeline retrieves every page of a theme's results and turns them into a
// deduplicated, sorted table.
type Pipeline struct {
	queries    driven.QueryBuilder
	fetcher    driven.Fetcher
	pacer      driven.Pacer
	normaliser driven.RecordNormaliser
	log        *logger.Logger
}

// NewPipeline creates a pagination pipeline.
// A nil logger discards output.
func NewPipeline(
	queries driven.QueryBuilder,
	fetcher driven.Fetcher,
	pacer driven.Pacer,
	normaliser driven.RecordNormaliser,
	log *logger.Logger,
) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{
		queries:    queries,
		fetcher:    fetcher,
		pacer:      pacer,
		normaliser: normaliser,
		log:        log,
	}
}

// ClampTotal limits a reported result count to domain.MaxResults.
func ClampTotal(total int) int {
	if total > domain.MaxResults {
		return domain.MaxResults
	}
	if total < 0 {
		return 0
	}
	return total
}

// AdditionalPages returns how many pages follow the first one for a
// reported total. The division truncates; a total that is an exact
// multiple of pageSize therefore ends with one empty page.
func AdditionalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return ClampTotal(total) / pageSize
}

// Run fetches all pages for theme.
//
// Pages are requested strictly in order and the pacer is consulted before
// every request. A truncated response stops pagination but keeps the rows
// already collected; any other fetch error aborts the run.
func (p *Pipeline) Run(ctx context.Context, theme domain.Theme) (domain.Table, domain.FetchStats, error) {
	log := p.log.With("theme", theme.ID())
	var stats domain.FetchStats

	first, err := p.fetch(ctx, log, theme, 0)
	if err != nil {
		if errors.Is(err, domain.ErrTruncated) {
			log.Error("First page was truncated, no results collected: %v", err)
			stats.Truncated = true
			return domain.NewTable(nil), stats, nil
		}
		return domain.Table{}, stats, err
	}

	stats.ReportedTotal = first.Total
	stats.ClampedTotal = ClampTotal(first.Total)
	log.Info("Total results returned from query: %d", first.Total)
	if stats.ClampedTotal < first.Total {
		log.Info("Limiting total number of results considered to %d", domain.MaxResults)
	}

	pageSize := p.queries.PageSize()
	additional := AdditionalPages(first.Total, pageSize)
	stats.PagesPlanned = 1 + additional

	rows := p.normaliser.NormaliseBatch(first)
	stats.PagesFetched = 1

	for i := 1; i <= additional; i++ {
		page, err := p.fetch(ctx, log, theme, i*pageSize)
		if err != nil {
			if errors.Is(err, domain.ErrTruncated) {
				log.Error("Page %d of %d was truncated, stopping pagination: %v", i+1, stats.PagesPlanned, err)
				stats.Truncated = true
				break
			}
			return domain.Table{}, stats, err
		}
		rows = append(rows, p.normaliser.NormaliseBatch(page)...)
		stats.PagesFetched++
	}

	stats.RowsFetched = len(rows)
	table := domain.NewTable(rows).Dedup().SortByReportID()
	log.Info("Collected %d rows, %d after removing duplicates", stats.RowsFetched, table.Len())

	return table, stats, nil
}

func (p *Pipeline) fetch(ctx context.Context, log *logger.Logger, theme domain.Theme, skip int) (*driven.Page, error) {
	if err := p.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for request slot: %w", err)
	}

	url := p.queries.QueryURL(theme, skip)
	log.Info("Executing query: %s", url)

	page, err := p.fetcher.FetchPage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch page at skip %d: %w", skip, err)
	}
	return page, nil
}
