package store_test

import (
	"context"
	"testing"

	"github.com/jobq/jobq/store"
)

func TestConfigGetDefault(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cfg := store.NewConfigStore(db)

	v, err := cfg.GetConfig(ctx, "backoff_base", "2")
	if err != nil {
		t.Fatal(err)
	}
	if v != "2" {
		t.Fatalf("expected default 2, got %s", v)
	}
}

func TestConfigSetThenGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cfg := store.NewConfigStore(db)

	if err := cfg.SetConfig(ctx, "backoff_base", "3"); err != nil {
		t.Fatal(err)
	}
	v, err := cfg.GetConfig(ctx, "backoff_base", "2")
	if err != nil {
		t.Fatal(err)
	}
	if v != "3" {
		t.Fatalf("expected 3, got %s", v)
	}

	// Overwriting an existing key exercises the upsert path.
	if err := cfg.SetConfig(ctx, "backoff_base", "4"); err != nil {
		t.Fatal(err)
	}
	v, err = cfg.GetConfig(ctx, "backoff_base", "2")
	if err != nil {
		t.Fatal(err)
	}
	if v != "4" {
		t.Fatalf("expected 4 after overwrite, got %s", v)
	}
}

func TestConfigList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cfg := store.NewConfigStore(db)

	if err := cfg.SetConfig(ctx, "backoff_base", "3"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetConfig(ctx, "default_max_retries", "5"); err != nil {
		t.Fatal(err)
	}

	all, err := cfg.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if all["backoff_base"] != "3" || all["default_max_retries"] != "5" {
		t.Fatalf("unexpected config list contents: %v", all)
	}
}
