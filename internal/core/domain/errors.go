package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTheme indicates a theme name that does not map to a search theme.
	ErrUnknownTheme = errors.New("unknown search theme")

	// ErrTruncated indicates the remote service closed a response before the
	// full body was read. Pagination stops and collected rows are kept.
	ErrTruncated = errors.New("response truncated")
)
