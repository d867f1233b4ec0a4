package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jobq/jobq"
	"github.com/jobq/jobq/job"
	"github.com/jobq/jobq/store"
)

func TestClaimAndSettleCompleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)
	settler := store.NewSettler(db, nil)

	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "true"}); err != nil {
		t.Fatal(err)
	}

	jb, err := claimer.Claim(ctx, "worker-aaaa", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	if jb == nil {
		t.Fatal("expected a claimed job")
	}
	if jb.State != job.Processing {
		t.Fatalf("expected Processing, got %v", jb.State)
	}
	if jb.StartedAt == nil {
		t.Fatal("expected StartedAt to be set")
	}

	second, err := claimer.Claim(ctx, "worker-bbbb", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	if second != nil {
		t.Fatal("expected no job ready for a second claimer")
	}

	outcome := jobq.Outcome{Kind: jobq.OutcomeCompleted, ExitCode: 0, Output: "ok"}
	if err := settler.Settle(ctx, jb, outcome, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}

	obs := store.NewObserver(db)
	got, err := obs.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if got.State != job.Completed {
		t.Fatalf("expected Completed, got %v", got.State)
	}
	if got.Attempts != 0 {
		t.Fatalf("expected Attempts unchanged at 0, got %d", got.Attempts)
	}
}

func TestClaimOrdersByPriority(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)

	if err := sub.Submit(ctx, &job.Submission{ID: "low", Command: "true", Priority: 0}); err != nil {
		t.Fatal(err)
	}
	if err := sub.Submit(ctx, &job.Submission{ID: "high", Command: "true", Priority: 10}); err != nil {
		t.Fatal(err)
	}

	jb, err := claimer.Claim(ctx, "worker-aaaa", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	if jb.ID != "high" {
		t.Fatalf("expected high-priority job claimed first, got %s", jb.ID)
	}
}

func TestClaimRespectsRunAt(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)

	future := time.Now().UTC().Add(time.Hour)
	if err := sub.Submit(ctx, &job.Submission{ID: "future", Command: "true", RunAt: &future}); err != nil {
		t.Fatal(err)
	}

	jb, err := claimer.Claim(ctx, "worker-aaaa", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	if jb != nil {
		t.Fatal("expected no claimable job before RunAt")
	}
}

func TestLeaseExpiryAllowsReclaim(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)

	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "true"}); err != nil {
		t.Fatal(err)
	}

	now := time.Now().UTC()
	if _, err := claimer.Claim(ctx, "worker-aaaa", 10*time.Millisecond, now); err != nil {
		t.Fatal(err)
	}

	time.Sleep(30 * time.Millisecond)

	jb, err := claimer.Claim(ctx, "worker-bbbb", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	if jb == nil {
		t.Fatal("expected job to be reclaimable after lease expiry")
	}
	if *jb.WorkerID != "worker-bbbb" {
		t.Fatalf("expected worker-bbbb to hold the new lease, got %s", *jb.WorkerID)
	}
}
