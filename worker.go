package jobq

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobq/jobq/internal"
)

// WorkerConfig defines the runtime behavior of a single Worker.
type WorkerConfig struct {
	// WorkerID records the worker's ID. NewWorker does not read it: the
	// lease holder is the id argument passed to NewWorker. Supervisor sets
	// it to the same generated ID it passes as that argument.
	WorkerID string

	// LeaseSeconds is the visibility timeout assigned on each Claim.
	LeaseSeconds int

	// PollInterval is how long an idle Worker sleeps between Claim
	// attempts, interruptible by shutdown.
	PollInterval time.Duration
}

// Worker drives one goroutine's worth of claim-execute-settle: repeatedly
// Claim at most one job, Execute it, and Settle the outcome, sleeping an
// interruptible PollInterval on a claim miss (spec §4.5).
//
// Unlike a shared dispatch pool, each Worker runs its own loop against the
// Claimer/Settler it was given (a Supervisor gives all its Workers the same
// ones); N Workers may run concurrently, coordinated only through the
// shared persistent store's lease semantics (spec §5).
//
// Worker has a strict lifecycle: Start may only be called once; Stop
// gracefully signals shutdown and waits for the current loop iteration to
// finish, up to a timeout. Stop never kills an in-flight execution — the
// job's lease will simply expire and be reclaimed later.
type Worker struct {
	lcBase

	id       string
	claimer  Claimer
	executor *Executor
	settler  Settler
	log      *slog.Logger

	lease    time.Duration
	interval time.Duration

	cancel context.CancelFunc
	done   internal.DoneChan
}

// NewWorker creates a Worker that is not started automatically.
func NewWorker(id string, claimer Claimer, executor *Executor, settler Settler, config WorkerConfig, log *slog.Logger) *Worker {
	return &Worker{
		id:       id,
		claimer:  claimer,
		executor: executor,
		settler:  settler,
		log:      log,
		lease:    time.Duration(config.LeaseSeconds) * time.Second,
		interval: config.PollInterval,
	}
}

func (w *Worker) loop(ctx context.Context) {
	defer close(w.done)
	for {
		if ctx.Err() != nil {
			return
		}
		jb, err := w.claimer.Claim(ctx, w.id, w.lease, time.Now().UTC())
		if err != nil {
			w.log.Error("claim failed", "worker_id", w.id, "err", err)
			if internal.InterruptibleSleep(ctx, w.interval) {
				return
			}
			continue
		}
		if jb == nil {
			if internal.InterruptibleSleep(ctx, w.interval) {
				return
			}
			continue
		}

		w.log.Info("job claimed", "worker_id", w.id, "job_id", jb.ID, "priority", jb.Priority)
		outcome, err := w.executor.Execute(ctx, jb)
		if err != nil {
			w.log.Error("execute failed", "worker_id", w.id, "job_id", jb.ID, "err", err)
			continue
		}
		now := time.Now().UTC()
		// Settle even if shutdown was signaled during execution, so the
		// attempt's outcome is not lost.
		if err := w.settler.Settle(context.WithoutCancel(ctx), jb, outcome, now); err != nil {
			w.log.Error("settle failed", "worker_id", w.id, "job_id", jb.ID, "err", err)
			continue
		}
		w.log.Info("job settled",
			"worker_id", w.id,
			"job_id", jb.ID,
			"outcome", outcome.Kind,
			"exit_code", outcome.ExitCode,
			"duration_s", outcome.Duration.Seconds(),
		)
	}
}

// Start begins the claim-execute-settle loop in a background goroutine.
// Start returns ErrDoubleStarted if the Worker has already been started.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.tryStart(); err != nil {
		return err
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(internal.DoneChan)
	go w.loop(ctx)
	return nil
}

// Stop signals cooperative shutdown and waits up to timeout for the loop to
// exit. If the Executor is mid-execution, the current attempt runs to
// completion (or its own TimeoutSeconds) before the loop observes shutdown;
// Stop does not kill it. Stop returns ErrStopTimeout if shutdown does not
// complete in time, and ErrDoubleStopped if the Worker is not running.
func (w *Worker) Stop(timeout time.Duration) error {
	return w.tryStop(timeout, func() internal.DoneChan {
		w.cancel()
		return w.done
	})
}
