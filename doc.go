// Package jobq provides a storage-agnostic, persistent job queue with
// at-least-once execution semantics for shell-command jobs.
//
// # Overview
//
// jobq models a durable queue of shell commands with explicit state
// transitions. It separates submission data (job.Submission) from delivery
// state (job.Job) and defines interfaces for submitting, claiming, settling,
// observing, rescuing and administering jobs. The package does not mandate a
// storage backend; jobq/store implements these interfaces over SQLite or
// PostgreSQL via bun.
//
// # Delivery Semantics
//
// jobq provides at-least-once execution: a job may run more than once if a
// worker crashes mid-execution, its lease expires, or an operator explicitly
// rescues it. Jobs are therefore not required to be idempotent by the
// engine, but commands that aren't idempotent may be re-run.
//
// # Lease Model
//
// When a job is claimed, it transitions from Pending (or ready Failed) to
// Processing and receives a lease: (WorkerID, LeaseUntil). While the lease
// is valid, the job is not eligible for claiming by other workers. If the
// lease expires before settlement, the job becomes claimable again, either
// implicitly (any worker's next Claim) or explicitly via Rescue.
//
// # State Machine
//
//	Pending            -> Processing
//	Processing         -> Completed
//	Processing         -> Failed      (attempts remain)
//	Processing         -> Dead        (attempts exhausted)
//	Processing         -> Pending     (lease expiry / rescue)
//	Failed (ready)     -> Processing
//	Dead               -> Pending     (administrative retry only)
//
// Completed and Dead are absorbing under normal operation.
//
// # Retry Policy
//
// On failure, Settle computes attempts' = attempts + 1. If attempts' >=
// MaxRetries the job becomes Dead; otherwise it becomes Failed with
// NextRunAt = now + backoff_base^attempts' seconds, unjittered by default.
//
// # Worker Loop
//
// A Worker repeatedly claims at most one job, executes it as a subprocess
// with an optional wall-clock timeout, and settles the outcome. Idle polling
// sleeps are interruptible by cooperative shutdown; in-flight executions are
// never killed on shutdown — their lease will expire and a later Claim (or
// Rescue) will recover them. A Supervisor runs a fixed number of Workers
// concurrently; all of them share the one Claimer, Settler and Executor the
// Supervisor was given, so they do not each hold a separate store handle.
//
// # Concurrency Model
//
// The only shared mutable resource is the persistent store. Mutual
// exclusion on a job row is enforced entirely by the lease combined with a
// conditional UPDATE in Claimer; no in-process locks participate, since they
// cannot protect against other worker processes.
package jobq
