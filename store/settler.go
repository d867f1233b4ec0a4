package store

import (
	"context"
	"strconv"
	"time"

	"github.com/uptrace/bun"

	"github.com/jobq/jobq"
	"github.com/jobq/jobq/job"
)

const backoffBaseKey = "backoff_base"

// Settler implements jobq.Settler using a SQL backend.
//
// Every branch is one conditional UPDATE guarded by "state = processing AND
// worker_id = <the claiming worker>", so a settlement from a worker that
// has since lost its lease (rescued or re-claimed by another worker) fails
// cleanly with jobq.ErrSettleLost instead of silently clobbering a newer
// attempt.
//
// The backoff base is read from ConfigStore on every failure settlement
// rather than fixed at construction, so a live "config set backoff_base"
// takes effect on the very next retry without restarting any worker.
type Settler struct {
	db     *bun.DB
	config *ConfigStore
}

// NewSettler creates a new SQL-backed Settler.
func NewSettler(db *bun.DB, cfg *ConfigStore) *Settler {
	return &Settler{db: db, config: cfg}
}

func (s *Settler) backoffBase(ctx context.Context) uint32 {
	if s.config == nil {
		return 2
	}
	raw, err := s.config.GetConfig(ctx, backoffBaseKey, "2")
	if err != nil {
		return 2
	}
	base, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || base == 0 {
		return 2
	}
	return uint32(base)
}

func (s *Settler) Settle(ctx context.Context, jb *job.Job, outcome jobq.Outcome, now time.Time) error {
	if outcome.Kind == jobq.OutcomeCompleted {
		return s.settleCompleted(ctx, jb, outcome, now)
	}
	return s.settleFailure(ctx, jb, outcome, now)
}

func (s *Settler) settleCompleted(ctx context.Context, jb *job.Job, outcome jobq.Outcome, now time.Time) error {
	output := outcome.Output
	durationSeconds := outcome.Duration.Seconds()
	exitCode := outcome.ExitCode
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Completed).
		Set("exit_code = ?", exitCode).
		Set("error = NULL").
		Set("output = ?", output).
		Set("lease_until = NULL").
		Set("finished_at = ?", now).
		Set("updated_at = ?", now).
		Set("duration_seconds = ?", durationSeconds).
		Where("id = ?", jb.ID).
		Where("state = ?", job.Processing).
		Where("worker_id = ?", workerIDOf(jb)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return jobq.ErrSettleLost
	}
	return nil
}

// settleFailure implements the Failed/TimedOut branches of spec §4.4: it
// computes attempts' = attempts+1, promoting to Dead once attempts' >=
// MaxRetries, otherwise scheduling a retry via NextRunAt = now +
// backoff_base^attempts' seconds.
func (s *Settler) settleFailure(ctx context.Context, jb *job.Job, outcome jobq.Outcome, now time.Time) error {
	attempts := jb.Attempts + 1
	errStr := outcome.Error
	exitCode := outcome.ExitCode
	durationSeconds := outcome.Duration.Seconds()

	if attempts >= jb.MaxRetries {
		res, err := s.db.NewUpdate().
			Model((*jobModel)(nil)).
			Set("state = ?", job.Dead).
			Set("attempts = ?", attempts).
			Set("exit_code = ?", exitCode).
			Set("error = ?", errStr).
			Set("lease_until = NULL").
			Set("finished_at = ?", now).
			Set("updated_at = ?", now).
			Set("duration_seconds = ?", durationSeconds).
			Where("id = ?", jb.ID).
			Where("state = ?", job.Processing).
			Where("worker_id = ?", workerIDOf(jb)).
			Exec(ctx)
		if err != nil {
			return err
		}
		if !isAffected(res) {
			return jobq.ErrSettleLost
		}
		return nil
	}

	delay := jobq.Backoff(jobq.BackoffConfig{Base: s.backoffBase(ctx)}, attempts)
	nextRunAt := now.Add(delay)
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Failed).
		Set("attempts = ?", attempts).
		Set("exit_code = ?", exitCode).
		Set("error = ?", errStr).
		Set("next_run_at = ?", nextRunAt).
		Set("lease_until = NULL").
		Set("updated_at = ?", now).
		Set("duration_seconds = ?", durationSeconds).
		Where("id = ?", jb.ID).
		Where("state = ?", job.Processing).
		Where("worker_id = ?", workerIDOf(jb)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return jobq.ErrSettleLost
	}
	return nil
}

func workerIDOf(jb *job.Job) string {
	if jb.WorkerID == nil {
		return ""
	}
	return *jb.WorkerID
}
