package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jobq/jobq"
	"github.com/jobq/jobq/job"
	"github.com/jobq/jobq/store"
)

func TestSettleFailedSchedulesRetry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)
	settler := store.NewSettler(db, store.NewConfigStore(db))

	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "false", MaxRetries: intPtr(3)}); err != nil {
		t.Fatal(err)
	}

	jb, err := claimer.Claim(ctx, "worker-aaaa", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}

	now := time.Now().UTC()
	outcome := jobq.Outcome{Kind: jobq.OutcomeFailed, ExitCode: 1, Error: "boom"}
	if err := settler.Settle(ctx, jb, outcome, now); err != nil {
		t.Fatal(err)
	}

	obs := store.NewObserver(db)
	got, err := obs.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if got.State != job.Failed {
		t.Fatalf("expected Failed, got %v", got.State)
	}
	if got.Attempts != 1 {
		t.Fatalf("expected Attempts=1, got %d", got.Attempts)
	}
	if got.NextRunAt == nil || !got.NextRunAt.After(now) {
		t.Fatal("expected NextRunAt to be scheduled in the future")
	}
	if got.FinishedAt != nil {
		t.Fatal("expected FinishedAt to remain unset after a retryable failure")
	}
}

func TestSettleFailedExhaustsIntoDead(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)
	settler := store.NewSettler(db, nil)

	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "false", MaxRetries: intPtr(1)}); err != nil {
		t.Fatal(err)
	}

	jb, err := claimer.Claim(ctx, "worker-aaaa", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}

	outcome := jobq.Outcome{Kind: jobq.OutcomeFailed, ExitCode: 1, Error: "boom"}
	if err := settler.Settle(ctx, jb, outcome, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}

	obs := store.NewObserver(db)
	got, err := obs.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if got.State != job.Dead {
		t.Fatalf("expected Dead, got %v", got.State)
	}
	if got.FinishedAt == nil {
		t.Fatal("expected FinishedAt to be set for a Dead job")
	}
}

func TestSettleLostWhenLeaseReassigned(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)
	rescuer := store.NewRescuer(db)
	settler := store.NewSettler(db, nil)

	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "true"}); err != nil {
		t.Fatal(err)
	}

	now := time.Now().UTC()
	jb, err := claimer.Claim(ctx, "worker-aaaa", 5*time.Millisecond, now)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := rescuer.RescueLeases(ctx, 0, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}
	if _, err := claimer.Claim(ctx, "worker-bbbb", time.Second, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}

	outcome := jobq.Outcome{Kind: jobq.OutcomeCompleted}
	err = settler.Settle(ctx, jb, outcome, time.Now().UTC())
	if !errors.Is(err, jobq.ErrSettleLost) {
		t.Fatalf("expected ErrSettleLost, got %v", err)
	}
}

func intPtr(v int) *int { return &v }
