package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

// ReportWriter renders a finished report. Each writer is called once per
// theme after the table is final.
type ReportWriter interface {
	// Name returns the writer name for logging (e.g., "html").
	Name() string

	// Write renders the report and returns the path written.
	Write(ctx context.Context, report *domain.Report) (string, error)
}

// RunArchive keeps a queryable record of a run alongside the report files.
// It is write-only from the tool's point of view; nothing reads it back.
type RunArchive interface {
	ReportWriter

	// BeginRun records the start of run. Reports written afterwards are
	// attached to it.
	BeginRun(ctx context.Context, run domain.Run) error

	// FinishRun records the run outcome. A nil runErr marks it completed.
	FinishRun(ctx context.Context, finishedAt time.Time, runErr error) error

	// Close releases the archive.
	Close() error
}
