package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jobq/jobq"
	"github.com/jobq/jobq/job"
	"github.com/jobq/jobq/store"
)

func TestSubmitDuplicateID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	sub := store.NewSubmitter(db, nil)

	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "true"}); err != nil {
		t.Fatal(err)
	}
	err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "true"})
	if !errors.Is(err, jobq.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestSubmitDefaultsMaxRetriesFromConfig(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cfg := store.NewConfigStore(db)
	if err := cfg.SetConfig(ctx, "default_max_retries", "7"); err != nil {
		t.Fatal(err)
	}
	sub := store.NewSubmitter(db, cfg)

	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "true"}); err != nil {
		t.Fatal(err)
	}

	obs := store.NewObserver(db)
	got, err := obs.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if got.MaxRetries != 7 {
		t.Fatalf("expected MaxRetries=7 from config default, got %d", got.MaxRetries)
	}
}

func TestSubmitExplicitMaxRetriesOverridesConfig(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cfg := store.NewConfigStore(db)
	if err := cfg.SetConfig(ctx, "default_max_retries", "7"); err != nil {
		t.Fatal(err)
	}
	sub := store.NewSubmitter(db, cfg)

	explicit := 1
	if err := sub.Submit(ctx, &job.Submission{ID: "j1", Command: "true", MaxRetries: &explicit}); err != nil {
		t.Fatal(err)
	}

	obs := store.NewObserver(db)
	got, err := obs.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if got.MaxRetries != 1 {
		t.Fatalf("expected explicit MaxRetries=1, got %d", got.MaxRetries)
	}
}
