package jobq

import (
	"context"

	"github.com/jobq/jobq/job"
)

// Observer provides read-only access to jobs stored in the queue.
//
// Observer does not modify job state and does not participate in lease or
// lifecycle transitions. It exists for diagnostic, monitoring and
// administrative use (the CLI and dashboard external collaborators).
type Observer interface {

	// Get returns the job identified by id. If no job with that id exists,
	// Get returns (nil, nil).
	Get(ctx context.Context, id string) (*job.Job, error)

	// List returns up to limit jobs matching state, ordered by CreatedAt
	// descending (newest first). If state is job.Unknown, no state filter is applied. If
	// limit is zero or negative, all matching jobs may be returned.
	List(ctx context.Context, state job.State, limit int) ([]*job.Job, error)
}
