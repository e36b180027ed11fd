package openfda

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates a body that could not be decoded as an
// openFDA response.
var ErrMalformedResponse = errors.New("openfda: malformed response")

// APIError represents an openFDA error response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("openfda: API error %d %s: %s (URL: %s)", e.StatusCode, e.Code, e.Message, e.URL)
	}
	return fmt.Sprintf("openfda: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsRateLimited checks if the error indicates the API rate limit was hit.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
