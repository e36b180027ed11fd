package openfda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Fetcher = (*Client)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent identifies maude to the openFDA service.
	DefaultUserAgent = "maude-cli"
)

// Client fetches single pages from the openFDA API.
type Client struct {
	http      *http.Client
	apiKey    string
	userAgent string
}

// ClientConfig configures a Client. Zero values select defaults.
type ClientConfig struct {
	// HTTPClient overrides the HTTP client. Its timeout is left untouched.
	HTTPClient *http.Client

	// Timeout bounds a whole request including the body read.
	Timeout time.Duration

	// APIKey is an optional openFDA API key. It is added to outgoing
	// requests only, never to the URLs recorded in reports.
	APIKey string

	// UserAgent overrides DefaultUserAgent.
	UserAgent string
}

// NewClient creates a new openFDA client.
func NewClient(cfg ClientConfig) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	return &Client{http: hc, apiKey: cfg.APIKey, userAgent: ua}
}

// response is the subset of the openFDA envelope that maude reads.
type response struct {
	Meta struct {
		Results struct {
			Total int `json:"total"`
		} `json:"results"`
	} `json:"meta"`
	Results []driven.RawRecord `json:"results"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// FetchPage performs one GET of queryURL and decodes the body.
//
// A body cut short by the server returns an error wrapping
// domain.ErrTruncated. A 404 carrying openFDA's NOT_FOUND code means the
// query matched nothing and returns an empty page.
func (c *Client) FetchPage(ctx context.Context, queryURL string) (*driven.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(queryURL), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.wrapError(err, "request", queryURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.wrapError(err, "read body", queryURL)
	}

	var decoded response
	decodeErr := json.Unmarshal(body, &decoded)

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode), URL: queryURL}
		if decodeErr == nil && decoded.Error != nil {
			apiErr.Code = decoded.Error.Code
			apiErr.Message = decoded.Error.Message
		}
		if apiErr.StatusCode == http.StatusNotFound && apiErr.Code == "NOT_FOUND" {
			return &driven.Page{URL: queryURL}, nil
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, queryURL, decodeErr)
	}

	return &driven.Page{
		URL:     queryURL,
		Total:   decoded.Meta.Results.Total,
		Results: decoded.Results,
	}, nil
}

// requestURL adds the API key, when configured, to the outgoing URL.
func (c *Client) requestURL(queryURL string) string {
	if c.apiKey == "" {
		return queryURL
	}
	return queryURL + "&api_key=" + url.QueryEscape(c.apiKey)
}

// wrapError classifies transport errors. Partial reads become
// domain.ErrTruncated so the pipeline can keep what it has.
func (c *Client) wrapError(err error, operation, queryURL string) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrTruncated, operation, queryURL, err)
	}
	return fmt.Errorf("%s %s: %w", operation, queryURL, err)
}
