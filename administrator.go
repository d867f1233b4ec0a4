package jobq

import "context"

// Administrator exposes the manual recovery operations an operator may
// invoke outside the normal worker path.
type Administrator interface {

	// DLQRetry resets a Dead job to Pending with Attempts=0, clearing
	// Error, NextRunAt, WorkerID and LeaseUntil. It is a no-op if the job
	// is not currently Dead or does not exist.
	DLQRetry(ctx context.Context, id string) error
}

// ConfigStore is the string-keyed config relation (spec §3 Config entity).
//
// Recognized keys consumed by the core: default_max_retries, lease_seconds,
// backoff_base, poll_interval. Unknown keys are permitted and ignored by the
// core.
type ConfigStore interface {

	// GetConfig returns the value for key, or def if the key is unset.
	GetConfig(ctx context.Context, key string, def string) (string, error)

	// SetConfig upserts key to value, refreshing its UpdatedAt audit field.
	SetConfig(ctx context.Context, key string, value string) error
}
