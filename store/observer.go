package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/jobq/jobq/job"
)

// Observer implements jobq.Observer using a SQL backend.
//
// Observer is read-only: it never participates in claim, settle, or rescue
// transactions and its results are point-in-time snapshots.
type Observer struct {
	db *bun.DB
}

// NewObserver creates a new SQL-backed Observer.
func NewObserver(db *bun.DB) *Observer {
	return &Observer{db: db}
}

// Get retrieves a job by ID, returning (nil, nil) if it does not exist.
func (o *Observer) Get(ctx context.Context, id string) (*job.Job, error) {
	var model jobModel
	err := o.db.NewSelect().
		Model(&model).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return model.toJob(), nil
}

// List returns up to limit jobs in state, newest first. A zero state
// (job.Unknown) applies no state filter. limit <= 0 means no LIMIT clause.
func (o *Observer) List(ctx context.Context, state job.State, limit int) ([]*job.Job, error) {
	var models []jobModel
	query := o.db.NewSelect().Model(&models).Order("created_at DESC")
	if state != job.Unknown {
		query = query.Where("state = ?", state)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	jobs := make([]*job.Job, len(models))
	for i := range models {
		jobs[i] = models[i].toJob()
	}
	return jobs, nil
}

// Metrics summarizes job counts per state, generalizing cli.py's
// "queue metrics" command.
type Metrics struct {
	Pending             int64
	Processing          int64
	Failed              int64
	Completed           int64
	Dead                int64
	AvgDurationSeconds  float64
	HasAvgDurationStats bool
}

// Metrics computes a point-in-time count of jobs in each state.
func (o *Observer) Metrics(ctx context.Context) (Metrics, error) {
	var rows []struct {
		State job.State `bun:"state"`
		Count int64     `bun:"count"`
	}
	err := o.db.NewSelect().
		Model((*jobModel)(nil)).
		ColumnExpr("state").
		ColumnExpr("COUNT(*) AS count").
		Group("state").
		Scan(ctx, &rows)
	if err != nil {
		return Metrics{}, err
	}
	var m Metrics
	for _, r := range rows {
		switch r.State {
		case job.Pending:
			m.Pending = r.Count
		case job.Processing:
			m.Processing = r.Count
		case job.Failed:
			m.Failed = r.Count
		case job.Completed:
			m.Completed = r.Count
		case job.Dead:
			m.Dead = r.Count
		}
	}

	var avg sql.NullFloat64
	err = o.db.NewSelect().
		Model((*jobModel)(nil)).
		ColumnExpr("AVG(duration_seconds) AS avg").
		Where("state = ?", job.Completed).
		Where("duration_seconds IS NOT NULL").
		Scan(ctx, &avg)
	if err != nil {
		return Metrics{}, err
	}
	if avg.Valid {
		m.AvgDurationSeconds = avg.Float64
		m.HasAvgDurationStats = true
	}

	return m, nil
}
