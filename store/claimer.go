package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/jobq/jobq/job"
)

// Claimer implements jobq.Claimer using a SQL backend.
//
// Claim follows spec §4.2's literal protocol rather than a single
// UPDATE...RETURNING over a subquery: begin a write transaction, SELECT the
// single top-ranked ready row, then UPDATE it with the lease guard
// predicate repeated (closing the SELECT-to-UPDATE race window even under
// relaxed isolation), then commit. A zero-rows UPDATE means another writer
// won the race.
type Claimer struct {
	db *bun.DB
}

// NewClaimer creates a new SQL-backed Claimer.
func NewClaimer(db *bun.DB) *Claimer {
	return &Claimer{db: db}
}

// Claim selects and leases at most one ready job. See jobq.Claimer for the
// readiness predicate and ordering.
func (c *Claimer) Claim(ctx context.Context, workerID string, lease time.Duration, now time.Time) (*job.Job, error) {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}

	var candidate jobModel
	err = tx.NewSelect().
		Model(&candidate).
		WhereGroup("AND", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("state = ?", job.Pending).
				WhereOr("(state = ? AND next_run_at IS NOT NULL AND next_run_at <= ?)", job.Failed, now).
				WhereOr("(state = ? AND lease_until IS NOT NULL AND lease_until <= ?)", job.Processing, now)
		}).
		Where("(run_at IS NULL OR run_at <= ?)", now).
		Where("(lease_until IS NULL OR lease_until <= ?)", now).
		Order("priority DESC", "created_at ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	leaseUntil := now.Add(lease)
	res, err := tx.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Processing).
		Set("worker_id = ?", workerID).
		Set("lease_until = ?", leaseUntil).
		Set("started_at = COALESCE(started_at, ?)", now).
		Set("updated_at = ?", now).
		Where("id = ?", candidate.ID).
		Where("(lease_until IS NULL OR lease_until <= ?)", now).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if !isAffected(res) {
		// Another writer won the race between our SELECT and UPDATE.
		_ = tx.Commit()
		return nil, nil
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	candidate.State = job.Processing
	candidate.WorkerID = &workerID
	candidate.LeaseUntil = &leaseUntil
	if candidate.StartedAt == nil {
		candidate.StartedAt = &now
	}
	candidate.UpdatedAt = now
	return candidate.toJob(), nil
}
