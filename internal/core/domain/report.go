package domain

import "time"

// MaxResults is the deepest offset the openFDA API will page to with
// limit/skip. Totals above it are clamped; the investigation explores
// trends and does not need exhaustive results.
const MaxResults = 25000

// FetchStats describes how a theme's result set was paged.
type FetchStats struct {
	// ReportedTotal is the total the server reported for the query.
	ReportedTotal int

	// ClampedTotal is ReportedTotal limited to MaxResults.
	ClampedTotal int

	// PagesPlanned counts the first page plus the additional full pages.
	PagesPlanned int

	// PagesFetched counts the pages actually fetched.
	PagesFetched int

	// RowsFetched is the number of rows normalised before deduplication.
	RowsFetched int

	// Truncated is true when a truncated response stopped pagination early.
	Truncated bool
}

// Report is a finished theme investigation: the labelled table and the
// narrative rendered around it.
type Report struct {
	// Theme is the search theme the report was built from.
	Theme Theme

	// Title is the report heading.
	Title string

	// Description is an HTML fragment introducing the investigation.
	Description string

	// Criteria holds one HTML fragment per filtering stage, in the order
	// applied, each stating the resulting row count.
	Criteria []string

	// HighlightTerms are wrapped in a highlight marker in comment fields.
	HighlightTerms []string

	// Table is the final, labelled table.
	Table Table

	// Stats records how the result set was fetched.
	Stats FetchStats

	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time
}

// Summary returns the numbers the CLI prints after a theme completes.
func (r *Report) Summary() ReportSummary {
	return ReportSummary{
		Theme:         r.Theme,
		ReportedTotal: r.Stats.ReportedTotal,
		RowsFetched:   r.Stats.RowsFetched,
		RowsReported:  r.Table.Len(),
		Truncated:     r.Stats.Truncated,
	}
}

// ReportSummary is a compact view of a Report.
type ReportSummary struct {
	Theme         Theme
	ReportedTotal int
	RowsFetched   int
	RowsReported  int
	Truncated     bool
}
