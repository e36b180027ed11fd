package openfda

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure Queries implements the interface.
var _ driven.QueryBuilder = Queries{}

// DefaultBaseURL is the openFDA device adverse event endpoint.
const DefaultBaseURL = "https://api.fda.gov/device/event.json"

// ResultsPerBatch is the page size used for both limit and skip.
// openFDA allows at most 1000 results per request.
const ResultsPerBatch = 500

// searchExpressions holds the already-encoded search term for each theme.
var searchExpressions = map[domain.Theme]string{
	domain.ThemeArtificialIntelligence: "%22artificial+intelligence*%22+OR+%22machine+learning*%22",
	domain.ThemeAlgorithm:              "algorithm*",
	domain.ThemeDiagnosticAlgorithm:    "algorithm*+AND+(diagnostic*+OR+diagnosis*)",
}

// SearchExpression returns the search term for theme.
// It panics for a theme without an expression.
func SearchExpression(theme domain.Theme) string {
	expr, ok := searchExpressions[theme]
	if !ok {
		panic(fmt.Sprintf("openfda: no search expression for theme %s", theme))
	}
	return expr
}

// QueryURL returns the query URL for one page of theme's results.
// The result depends only on its arguments. A skip of zero produces no skip
// term; negative skips panic.
func QueryURL(baseURL string, theme domain.Theme, skip int) string {
	if skip < 0 {
		panic(fmt.Sprintf("openfda: negative skip %d", skip))
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	url := baseURL + "?search=" + SearchExpression(theme) + "&limit=" + strconv.Itoa(ResultsPerBatch)
	if skip > 0 {
		url += "&skip=" + strconv.Itoa(skip)
	}
	return url
}

// Queries builds query URLs against a fixed base URL.
type Queries struct {
	// BaseURL overrides DefaultBaseURL when set.
	BaseURL string
}

// QueryURL returns the URL of the page of theme's results starting at skip.
func (q Queries) QueryURL(theme domain.Theme, skip int) string {
	return QueryURL(q.BaseURL, theme, skip)
}

// PageSize returns ResultsPerBatch.
func (Queries) PageSize() int {
	return ResultsPerBatch
}
