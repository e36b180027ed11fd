package domain

import "time"

// RunStatus is the outcome recorded for a run.
type RunStatus string

// Run statuses.
const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// Run identifies one invocation of the investigation.
type Run struct {
	// ID is a random UUID.
	ID string

	// StartedAt is when the run directory was created.
	StartedAt time.Time

	// Themes lists the themes requested, in run order.
	Themes []Theme

	// Dir is the run's output directory.
	Dir string
}
