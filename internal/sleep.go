package internal

import (
	"context"
	"time"
)

// InterruptibleSleep blocks for d or until ctx is canceled, whichever comes
// first. It reports whether it returned because ctx was canceled.
func InterruptibleSleep(ctx context.Context, d time.Duration) (canceled bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return true
	case <-timer.C:
		return false
	}
}
