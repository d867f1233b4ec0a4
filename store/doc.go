// Package store provides a bun-based SQL implementation of jobq's
// interfaces (Submitter, Claimer, Settler, Observer, Rescuer, Administrator,
// ConfigStore).
//
// # Overview
//
// The SQL backend provides durable persistence of jobs, atomic lease-based
// state transitions implemented as a SELECT followed by a guarded UPDATE
// inside a single write transaction (spec §4.2), and retry-safe settlement
// guarded by ownership of the current lease.
//
// It is compatible with SQLite (the default, embedded backend, via
// modernc.org/sqlite) and PostgreSQL (via jackc/pgx and bun's pgdialect),
// subject to each backend's transactional guarantees.
//
// # Concurrency Model
//
// Claim is a single write transaction: SELECT the top-ranked ready row,
// then UPDATE it with the lease guard predicate repeated on the UPDATE
// itself (spec §4.2's "why the guard on UPDATE" — even under serialized
// writers, the SELECT-to-UPDATE window is real). If the UPDATE affects zero
// rows, another writer won the race and Claim returns (nil, nil).
//
// SQLite callers are strongly encouraged to enable WAL mode and configure a
// busy_timeout; this package does not manage connection lifecycle itself.
//
// # Schema
//
// The backend expects "jobs" and "config" tables matching jobModel and
// configModel. InitDB (or MustInitDB) creates both tables and three jobs
// indexes — (state, next_run_at), (state, lease_until), (state, updated_at)
// — if they don't already exist, inside one transaction. InitDB performs no
// destructive migration; schema evolution for existing deployments is the
// job of jobq/cmd/queue-migrate.
//
// # Database Lifecycle
//
// This package does not manage connection pooling or database lifecycle.
// The caller is responsible for constructing *bun.DB (see SQLiteOpen /
// PostgresOpen), connection limits, and running InitDB before use.
package store
