package driven

import (
	"context"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

// RawRecord is one adverse event report object exactly as decoded from the
// openFDA response. Its shape is owned by the remote API and only
// partially trusted.
type RawRecord = map[string]any

// Page is one decoded page of openFDA results.
type Page struct {
	// URL is the query URL that produced the page.
	URL string

	// Total is the server-reported total match count (meta.results.total).
	Total int

	// Results holds the page's raw records.
	Results []RawRecord
}

// Fetcher performs exactly one network round trip per call.
type Fetcher interface {
	// FetchPage requests url and decodes the response body.
	// Truncated responses return an error wrapping domain.ErrTruncated;
	// the caller decides whether that ends pagination.
	FetchPage(ctx context.Context, url string) (*Page, error)
}

// Pacer spaces successive page requests.
type Pacer interface {
	// Wait blocks until the next request may be sent.
	Wait(ctx context.Context) error
}

// QueryBuilder maps a theme and offset to the exact query URL of one page.
// Implementations must be pure: equal arguments give byte-identical URLs.
type QueryBuilder interface {
	// QueryURL returns the URL of the page starting at skip.
	QueryURL(theme domain.Theme, skip int) string

	// PageSize returns the fixed number of results per page.
	PageSize() int
}
