package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/uptrace/bun"

	"github.com/jobq/jobq"
	"github.com/jobq/jobq/job"
)

const defaultMaxRetriesKey = "default_max_retries"

// Submitter implements jobq.Submitter using a SQL backend.
type Submitter struct {
	db     *bun.DB
	config *ConfigStore
}

// NewSubmitter creates a new SQL-backed Submitter. cfg is consulted for
// default_max_retries when a Submission omits MaxRetries.
func NewSubmitter(db *bun.DB, cfg *ConfigStore) *Submitter {
	return &Submitter{db: db, config: cfg}
}

// Submit inserts a new job row in the Pending state. A duplicate ID
// surfaces as jobq.ErrDuplicateID.
func (s *Submitter) Submit(ctx context.Context, sub *job.Submission) error {
	maxRetries := uint32(3)
	if sub.MaxRetries != nil {
		maxRetries = uint32(*sub.MaxRetries)
	} else if s.config != nil {
		raw, err := s.config.GetConfig(ctx, defaultMaxRetriesKey, "3")
		if err == nil {
			if parsed, perr := strconv.Atoi(raw); perr == nil && parsed > 0 {
				maxRetries = uint32(parsed)
			}
		}
	}

	model := fromSubmission(sub, maxRetries, nowUTC())
	_, err := s.db.NewInsert().Model(model).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return jobq.ErrDuplicateID
		}
		return err
	}
	return nil
}

// isUniqueViolation recognizes the primary-key collision both supported
// dialects surface: SQLite reports it in the driver error text, PostgreSQL
// via pgx's SQLSTATE 23505.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key")
}
