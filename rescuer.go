package jobq

import (
	"context"
	"time"
)

// Rescuer recovers jobs abandoned by a crashed or stalled worker.
//
// Rescue is an out-of-band operation, run on explicit operator invocation
// (the queuectl CLI's "rescue leases" command) — leases are also implicitly
// reclaimable by Claimer whenever LeaseUntil <= now, without Rescue ever
// running.
type Rescuer interface {

	// RescueLeases finds every Processing job whose LeaseUntil has passed
	// olderThan ago (a grace period beyond bare lease expiry, to avoid
	// racing a live worker with minor clock drift), resets it to Pending,
	// clears WorkerID and LeaseUntil, and returns the affected IDs.
	//
	// Attempts is not incremented: the re-execution is simply a retry of
	// the same attempt number, accepting the at-least-once duplication
	// cost. Running RescueLeases twice with the same cutoff back-to-back
	// yields the same set on the first call and an empty set on the
	// second (idempotence).
	RescueLeases(ctx context.Context, olderThan time.Duration, now time.Time) ([]string, error)
}
