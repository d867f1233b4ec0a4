package jobq

import (
	"context"
	"errors"

	"github.com/jobq/jobq/job"
)

// ErrDuplicateID indicates that a Submission's ID collides with an existing
// job row. Submission errors are reported synchronously; no row is written.
var ErrDuplicateID = errors.New("jobq: duplicate job id")

// Submitter defines the write-side entry point of the queue.
type Submitter interface {

	// Submit enqueues a new job in the Pending state.
	//
	// Implementations must:
	//   - reject a duplicate sub.ID with ErrDuplicateID without writing a row
	//   - default MaxRetries from config.default_max_retries (or 3) if nil
	//   - default Priority to 0 if unset
	//   - set CreatedAt and UpdatedAt to now
	//   - leave NextRunAt, WorkerID, LeaseUntil, ExitCode, Error, Output,
	//     DurationSeconds, StartedAt, FinishedAt all unset
	//
	// Submit must not mutate sub after returning. If Submit returns a
	// non-nil error, the job must not be considered enqueued.
	Submit(ctx context.Context, sub *job.Submission) error
}
