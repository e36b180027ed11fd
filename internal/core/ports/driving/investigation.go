package driving

import (
	"context"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

// Investigator runs theme investigations end to end.
type Investigator interface {
	// Investigate runs each theme in order and returns one report per theme.
	// Themes never run concurrently.
	Investigate(ctx context.Context, themes ...domain.Theme) ([]*domain.Report, error)
}
