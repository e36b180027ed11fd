package driven

import "github.com/custodia-labs/maude-cli/internal/core/domain"

// FilterStage is one step of a report's filtering criteria.
// Stages are chained (e.g., suspect device, then problem type).
type FilterStage interface {
	// Name returns the stage name for logging.
	Name() string

	// Apply returns a new table; the input is never modified.
	Apply(table domain.Table) domain.Table

	// Describe returns the HTML criterion sentence for the table Apply
	// produced, stating its row count.
	Describe(result domain.Table) string
}

// FilterChain runs stages in order.
type FilterChain interface {
	// Apply returns the final table and one criterion per stage.
	Apply(table domain.Table) (domain.Table, []string)
}
