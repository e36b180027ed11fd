// Package sqlite provides the run archive: a SQLite database written next to
// the report files of each run.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. The archive implements
// driven.RunArchive and records:
//
//   - runs: One row per invocation, with its outcome
//   - theme_results: One row per report, with its criteria and fetch statistics
//   - result_rows: The labelled table of each report
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// The database is stored at <run directory>/results.db. The archive is an
// export; the tool never reads it back.
package sqlite
