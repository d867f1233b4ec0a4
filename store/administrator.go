package store

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/jobq/jobq/job"
)

// Administrator implements jobq.Administrator using a SQL backend.
//
// DLQRetry resets a Dead job to Pending with a clean attempt count,
// grounded on cli.py's dlq_retry: a full reset rather than a bare state
// flip, so a DLQ-retried job gets its full MaxRetries budget again.
type Administrator struct {
	db *bun.DB
}

// NewAdministrator creates a new SQL-backed Administrator.
func NewAdministrator(db *bun.DB) *Administrator {
	return &Administrator{db: db}
}

func (a *Administrator) DLQRetry(ctx context.Context, id string) error {
	_, err := a.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Pending).
		Set("attempts = 0").
		Set("error = NULL").
		Set("next_run_at = NULL").
		Set("worker_id = NULL").
		Set("lease_until = NULL").
		Set("updated_at = ?", nowUTC()).
		Where("id = ?", id).
		Where("state = ?", job.Dead).
		Exec(ctx)
	return err
}

// DLQList returns every Dead job, oldest first, generalizing cli.py's
// "dlq list" command.
func (a *Administrator) DLQList(ctx context.Context) ([]*job.Job, error) {
	var models []jobModel
	if err := a.db.NewSelect().
		Model(&models).
		Where("state = ?", job.Dead).
		Order("created_at ASC").
		Scan(ctx); err != nil {
		return nil, err
	}
	jobs := make([]*job.Job, len(models))
	for i := range models {
		jobs[i] = models[i].toJob()
	}
	return jobs, nil
}
