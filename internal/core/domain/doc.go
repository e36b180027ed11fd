// Package domain defines the core business entities for maude.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Theme: One of the fixed search themes run against openFDA
//   - Row: A normalised adverse event report with a fixed column set
//   - Table: An ordered, value-semantics collection of rows
//   - Report: A finished table plus the narrative rendered around it
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
