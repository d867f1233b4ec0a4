package store

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/jobq/jobq/job"
)

type jobModel struct {
	bun.BaseModel `bun:"table:jobs"`

	ID      string `bun:"id,pk"`
	Command string `bun:"command,notnull"`

	State      job.State `bun:"state,notnull"`
	Attempts   uint32    `bun:"attempts,notnull,default:0"`
	MaxRetries uint32    `bun:"max_retries,notnull,default:3"`

	Priority int `bun:"priority,notnull,default:0"`

	RunAt     *time.Time `bun:"run_at,nullzero"`
	NextRunAt *time.Time `bun:"next_run_at,nullzero"`

	TimeoutSeconds *int `bun:"timeout_seconds,nullzero"`

	WorkerID   *string    `bun:"worker_id,nullzero"`
	LeaseUntil *time.Time `bun:"lease_until,nullzero"`

	StartedAt  *time.Time `bun:"started_at,nullzero"`
	FinishedAt *time.Time `bun:"finished_at,nullzero"`

	ExitCode        *int     `bun:"exit_code,nullzero"`
	Error           *string  `bun:"error,nullzero"`
	Output          *string  `bun:"output,nullzero"`
	DurationSeconds *float64 `bun:"duration_seconds,nullzero"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull"`
}

type configModel struct {
	bun.BaseModel `bun:"table:config"`

	Key       string    `bun:"key,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull"`
}

func (jm *jobModel) toJob() *job.Job {
	return &job.Job{
		ID:              jm.ID,
		Command:         jm.Command,
		State:           jm.State,
		Attempts:        jm.Attempts,
		MaxRetries:      jm.MaxRetries,
		Priority:        jm.Priority,
		RunAt:           jm.RunAt,
		NextRunAt:       jm.NextRunAt,
		TimeoutSeconds:  jm.TimeoutSeconds,
		WorkerID:        jm.WorkerID,
		LeaseUntil:      jm.LeaseUntil,
		StartedAt:       jm.StartedAt,
		FinishedAt:      jm.FinishedAt,
		ExitCode:        jm.ExitCode,
		Error:           jm.Error,
		Output:          jm.Output,
		DurationSeconds: jm.DurationSeconds,
		CreatedAt:       jm.CreatedAt,
		UpdatedAt:       jm.UpdatedAt,
	}
}

func fromSubmission(sub *job.Submission, maxRetries uint32, now time.Time) *jobModel {
	return &jobModel{
		ID:             sub.ID,
		Command:        sub.Command,
		State:          job.Pending,
		MaxRetries:     maxRetries,
		Priority:       sub.Priority,
		RunAt:          sub.RunAt,
		TimeoutSeconds: sub.TimeoutSeconds,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
