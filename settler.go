package jobq

import (
	"context"
	"errors"
	"time"

	"github.com/jobq/jobq/job"
)

// ErrSettleLost indicates that the job was no longer owned by the expected
// worker (state != Processing, or a different worker holds the lease) at
// settlement time. The caller's attempt outcome is lost; the lease will
// eventually expire and Rescue (or a later worker) will reclaim the job.
var ErrSettleLost = errors.New("jobq: settle lost (lease no longer held)")

// Settler applies the terminal or retry transition for a claimed job's
// attempt outcome.
//
// A SQL-backed Settler relies on the store's own busy/lock-wait handling
// (e.g. SQLite's busy_timeout) to ride out transient write contention on
// its single UPDATE rather than looping at the application layer: the
// Executor has already run, and silently dropping the settlement would
// violate at-least-once visibility for this attempt (spec §7,
// StoreTransient).
type Settler interface {

	// Settle commits exactly one row update for jb given the attempt
	// outcome.
	//
	// Completed path: state=Completed, ExitCode set, Error cleared, Output
	// set, LeaseUntil cleared, FinishedAt=now, DurationSeconds=duration.
	// Attempts is NOT incremented.
	//
	// Failure path (Failed or TimedOut outcome): attempts' = attempts+1.
	// If attempts' >= jb.MaxRetries: state=Dead, FinishedAt=now. Otherwise:
	// state=Failed, NextRunAt = now + backoff_base^attempts' seconds,
	// FinishedAt left unset. In both cases Attempts=attempts', ExitCode and
	// Error set from the outcome, LeaseUntil cleared, DurationSeconds set.
	//
	// If the row is no longer owned by jb's worker (another rescue or
	// settlement already happened), Settle returns ErrSettleLost.
	Settle(ctx context.Context, jb *job.Job, outcome Outcome, now time.Time) error
}
