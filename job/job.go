package job

import "time"

// Job is a snapshot of a single row in the jobs relation (spec §3).
//
// Job instances are returned by Claimer and Observer and passed back to
// Settler. They should be treated as immutable views: mutating a
// Job's fields directly does not change the underlying queue state.
type Job struct {
	ID      string
	Command string

	State    State
	Attempts uint32
	MaxRetries uint32

	Priority int

	RunAt     *time.Time
	NextRunAt *time.Time

	TimeoutSeconds *int

	WorkerID    *string
	LeaseUntil  *time.Time

	StartedAt  *time.Time
	FinishedAt *time.Time

	ExitCode        *int
	Error           *string
	Output          *string
	DurationSeconds *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Submission carries what a client supplies when enqueueing a job. Unlike
// Job it has no delivery-state fields; those are populated by storage at
// insert time (spec §6 Submission interface).
type Submission struct {
	// ID is the client-assigned unique identifier. A duplicate ID is a
	// submission error.
	ID string

	// Command is the shell command line executed verbatim.
	Command string

	// Priority: higher runs first. Negative values are allowed. Zero if
	// unset.
	Priority int

	// RunAt is the earliest wall-clock time the job is eligible. Nil means
	// immediately eligible.
	RunAt *time.Time

	// TimeoutSeconds bounds a single attempt's wall clock. Nil means
	// unbounded.
	TimeoutSeconds *int

	// MaxRetries, if nil, falls back to config.default_max_retries (or 3).
	MaxRetries *int
}
