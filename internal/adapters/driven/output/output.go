// Package output manages the per-run output directory.
//
// Every run writes into its own timestamped directory under an output root:
//
//	<root>/run_<YYYY-MM-DD-HHMMSS>/
//	    audit_trail.log
//	    <theme base name>.html
//	    <theme base name>.xlsx
//	    results.db
//
// The directory also owns the audit trail file the run's logger writes to.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/maude-cli/internal/logger"
)

// DefaultRoot is the output root used when none is configured.
const DefaultRoot = "investigation_results"

// AuditTrailFile is the log file name inside a run directory.
const AuditTrailFile = "audit_trail.log"

// dirLayout formats the run directory timestamp.
const dirLayout = "2006-01-02-150405"

// RunDirectory is one run's output directory.
type RunDirectory struct {
	path      string
	startedAt time.Time
	audit     *os.File
}

// DirName returns the run directory name for a start time.
func DirName(startedAt time.Time) string {
	return "run_" + startedAt.Format(dirLayout)
}

// Create makes a fresh run directory under root and opens its audit
// trail. An empty root means DefaultRoot. A run directory that already
// exists, such as one from a run started in the same second, is never
// reused; the error then wraps fs.ErrExist.
func Create(root string, startedAt time.Time) (*RunDirectory, error) {
	if root == "" {
		root = DefaultRoot
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}

	path := filepath.Join(root, DirName(startedAt))
	if err := os.Mkdir(path, 0o750); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("run directory %s already exists: %w", path, err)
		}
		return nil, fmt.Errorf("create run directory: %w", err)
	}

	audit, err := os.OpenFile(filepath.Join(path, AuditTrailFile), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open audit trail: %w", err)
	}

	return &RunDirectory{path: path, startedAt: startedAt, audit: audit}, nil
}

// Path returns the directory path.
func (d *RunDirectory) Path() string { return d.path }

// StartedAt returns the time the directory is named after.
func (d *RunDirectory) StartedAt() time.Time { return d.startedAt }

// File returns the path of name inside the directory.
func (d *RunDirectory) File(name string) string {
	return filepath.Join(d.path, name)
}

// Logger builds the run logger: every entry goes to the audit trail, and
// in verbose mode is mirrored to console.
func (d *RunDirectory) Logger(console io.Writer, verbose bool) *logger.Logger {
	return logger.New(logger.Options{
		AuditTrail: d.audit,
		Console:    console,
		Verbose:    verbose,
	})
}

// Close closes the audit trail.
func (d *RunDirectory) Close() error {
	if err := d.audit.Close(); err != nil {
		return fmt.Errorf("close audit trail: %w", err)
	}
	return nil
}
