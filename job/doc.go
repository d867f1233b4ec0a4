// Package job defines the stateful representation of a shell-command job
// within the jobq queue lifecycle.
//
// A Job is a full row snapshot: it carries scheduling metadata (Priority,
// RunAt, NextRunAt), lease ownership (WorkerID, LeaseUntil), retry accounting
// (Attempts, MaxRetries) and the last attempt's outcome (ExitCode, Error,
// Output, DurationSeconds).
//
// Submission carries only what a client supplies at enqueue time. Unlike Job,
// it has no state-machine fields; those are populated by storage on insert.
//
// Job and Submission values are snapshots. Mutating them does not change
// underlying storage; transitions happen only through the jobq package's
// Claimer, Settler, Rescuer and Administrator interfaces.
package job
