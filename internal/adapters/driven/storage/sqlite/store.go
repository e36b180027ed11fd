package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/maude-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// FileName is the archive's file name inside a run directory.
const FileName = "results.db"

// ErrNoRun is returned when a report is written before BeginRun.
var ErrNoRun = errors.New("no run in progress")

// Ensure Archive implements the interface.
var _ driven.RunArchive = (*Archive)(nil)

// Archive is a SQLite-backed run archive.
type Archive struct {
	db    *sql.DB
	path  string
	runID string
}

// NewArchive creates the archive database in dir.
func NewArchive(dir string) (*Archive, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty archive directory", domain.ErrInvalidInput)
	}

	// Ensure directory exists
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(dir, FileName)

	// Pragmas in the DSN apply to every pooled connection.
	db, err := sql.Open("sqlite", dbPath+
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	a := &Archive{
		db:   db,
		path: dbPath,
	}

	if err := a.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Path returns the database file path.
func (a *Archive) Path() string {
	return a.path
}

// Name returns the writer name.
func (a *Archive) Name() string { return "archive" }

// BeginRun records the start of run.
func (a *Archive) BeginRun(ctx context.Context, run domain.Run) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run without id", domain.ErrInvalidInput)
	}

	ids := make([]string, len(run.Themes))
	for i, t := range run.Themes {
		ids[i] = t.ID()
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, themes, output_dir, status)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UTC(), strings.Join(ids, ","), run.Dir, string(domain.RunRunning))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	a.runID = run.ID
	return nil
}

// FinishRun records the outcome of the current run.
func (a *Archive) FinishRun(ctx context.Context, finishedAt time.Time, runErr error) error {
	if a.runID == "" {
		return ErrNoRun
	}

	status := domain.RunCompleted
	var errText sql.NullString
	if runErr != nil {
		status = domain.RunFailed
		errText = sql.NullString{String: runErr.Error(), Valid: true}
	}

	_, err := a.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, status = ?, error = ?
		WHERE id = ?
	`, finishedAt.UTC(), string(status), errText, a.runID)
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}
	return nil
}

// Write stores report and its table under the current run. It returns the
// database path.
func (a *Archive) Write(ctx context.Context, report *domain.Report) (string, error) {
	if a.runID == "" {
		return "", ErrNoRun
	}

	criteria, err := json.Marshal(nonNil(report.Criteria))
	if err != nil {
		return "", fmt.Errorf("marshalling criteria: %w", err)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	s := report.Stats
	theme := report.Theme.ID()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO theme_results (run_id, theme, title, criteria, reported_total, clamped_total,
			pages_planned, pages_fetched, rows_fetched, rows_reported, truncated, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.runID, theme, report.Title, string(criteria), s.ReportedTotal, s.ClampedTotal,
		s.PagesPlanned, s.PagesFetched, s.RowsFetched, report.Table.Len(), boolToInt(s.Truncated),
		report.GeneratedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("saving theme result: %w", err)
	}

	if err := insertRows(ctx, tx, a.runID, theme, report.Table); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing report: %w", err)
	}
	return a.path, nil
}

func insertRows(ctx context.Context, tx *sql.Tx, runID, theme string, table domain.Table) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO result_rows (run_id, theme, position, label,
			base_report_id, report_id, source_url, adverse_event_flag, event_date,
			report_source_code, device_specialty_area, device_class, device_reg_number,
			device_name, device_model_number, device_catalogue_number, device_lot_number,
			device_expiration_date, patient_problems, product_problems,
			event_main_comments, event_manufacturer_comments, flags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing row insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range table.Entries() {
		flags, err := json.Marshal(flagMap(e.Flags))
		if err != nil {
			return fmt.Errorf("marshalling flags: %w", err)
		}

		args := []any{runID, theme, i + 1, e.Label}
		for _, v := range e.Row.Values() {
			args = append(args, v)
		}
		args = append(args, string(flags))

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("saving row %d: %w", i+1, err)
		}
	}
	return nil
}

// migrate runs all pending migrations.
func (a *Archive) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := a.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := a.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := a.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := a.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// flagMap converts flag columns to JSON-friendly keys.
func flagMap(flags map[domain.Column]bool) map[string]bool {
	out := make(map[string]bool, len(flags))
	for k, v := range flags {
		out[string(k)] = v
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
