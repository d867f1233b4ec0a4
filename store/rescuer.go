package store

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/jobq/jobq/job"
)

// Rescuer implements jobq.Rescuer using a SQL backend.
//
// RescueLeases reverts every Processing job whose lease expired more than
// olderThan ago back to Pending, clearing its lease and worker assignment
// so another worker can claim it (spec §4.6). It does not touch Attempts:
// a rescued job resumes at the same attempt count it was claimed at.
type Rescuer struct {
	db *bun.DB
}

// NewRescuer creates a new SQL-backed Rescuer.
func NewRescuer(db *bun.DB) *Rescuer {
	return &Rescuer{db: db}
}

func (r *Rescuer) RescueLeases(ctx context.Context, olderThan time.Duration, now time.Time) ([]string, error) {
	cutoff := now.Add(-olderThan)
	var ids []string
	err := r.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Pending).
		Set("worker_id = NULL").
		Set("lease_until = NULL").
		Set("updated_at = ?", now).
		Where("state = ?", job.Processing).
		Where("lease_until IS NOT NULL").
		Where("lease_until <= ?", cutoff).
		Returning("id").
		Scan(ctx, &ids)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
