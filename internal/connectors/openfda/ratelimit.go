package openfda

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure Pacer implements the interface.
var _ driven.Pacer = (*Pacer)(nil)

// DefaultPageDelay is the courtesy pause between page requests.
const DefaultPageDelay = 3 * time.Second

// Pacer spaces page requests at least delay apart using a single-token
// bucket. The first Wait returns immediately.
type Pacer struct {
	limiter *rate.Limiter
	delay   time.Duration
}

// NewPacer creates a pacer. A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Pacer{
		limiter: rate.NewLimiter(limit, 1),
		delay:   delay,
	}
}

// Wait blocks until the next request may be sent or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Delay returns the configured spacing.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}
