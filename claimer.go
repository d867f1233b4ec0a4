package jobq

import (
	"context"
	"time"

	"github.com/jobq/jobq/job"
)

// Claimer atomically selects and leases one ready job per invocation.
//
// A job is ready when:
//
//   - state = Pending, OR (state = Failed AND NextRunAt is set AND
//     NextRunAt <= now), OR (state = Processing AND LeaseUntil is set AND
//     LeaseUntil <= now, i.e. an expired lease, reclaimed without touching
//     Attempts), AND
//   - RunAt is unset OR RunAt <= now, AND
//   - LeaseUntil is unset OR LeaseUntil <= now.
//
// Among ready jobs, Claim selects by priority DESC, then CreatedAt ASC
// (FIFO within a priority). At most one job is claimed per call.
type Claimer interface {

	// Claim atomically transitions the highest-priority, oldest ready job
	// to Processing under a lease held by workerID until now+lease, and
	// returns it. If no job is ready, Claim returns (nil, nil).
	//
	// Claim preserves a job's first StartedAt across re-leases: StartedAt
	// is set only if it was previously unset.
	Claim(ctx context.Context, workerID string, lease time.Duration, now time.Time) (*job.Job, error)
}
