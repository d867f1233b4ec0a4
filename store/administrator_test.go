package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jobq/jobq"
	"github.com/jobq/jobq/job"
	"github.com/jobq/jobq/store"
)

func TestDLQRetryResetsAndAllowsReclaim(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)
	settler := store.NewSettler(db, nil)
	admin := store.NewAdministrator(db)
	obs := store.NewObserver(db)

	one := 1
	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "false", MaxRetries: &one}); err != nil {
		t.Fatal(err)
	}

	jb, err := claimer.Claim(ctx, "worker-aaaa", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	if err := settler.Settle(ctx, jb, jobq.Outcome{Kind: jobq.OutcomeFailed, Error: "boom"}, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}

	before, err := obs.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if before.State != job.Dead {
		t.Fatalf("expected Dead before retry, got %v", before.State)
	}

	if err := admin.DLQRetry(ctx, "j1"); err != nil {
		t.Fatal(err)
	}

	after, err := obs.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if after.State != job.Pending {
		t.Fatalf("expected Pending after DLQ retry, got %v", after.State)
	}
	if after.Attempts != 0 {
		t.Fatalf("expected Attempts reset to 0, got %d", after.Attempts)
	}

	jb2, err := claimer.Claim(ctx, "worker-bbbb", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	if jb2 == nil || jb2.ID != "j1" {
		t.Fatal("expected the retried job to be claimable again")
	}
}

func TestDLQList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	sub := store.NewSubmitter(db, nil)
	claimer := store.NewClaimer(db)
	settler := store.NewSettler(db, nil)
	admin := store.NewAdministrator(db)

	zero := 0
	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "false", MaxRetries: &zero}); err != nil {
		t.Fatal(err)
	}
	jb, err := claimer.Claim(ctx, "worker-aaaa", time.Second, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	if err := settler.Settle(ctx, jb, jobq.Outcome{Kind: jobq.OutcomeFailed, Error: "boom"}, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}

	dead, err := admin.DLQList(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(dead) != 1 || dead[0].ID != "j1" {
		t.Fatalf("expected [j1] in DLQ, got %v", dead)
	}
}
