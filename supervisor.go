package jobq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobq/jobq/internal"
)

// SupervisorConfig defines the worker pool a Supervisor starts (spec §6
// worker startup knobs: count, lease_seconds, poll_interval). backoff_base
// is not a Worker knob: Settler reads it from ConfigStore at settle time so
// that "config set backoff_base" takes effect without a restart.
type SupervisorConfig struct {
	Count        int
	LeaseSeconds int
	PollInterval time.Duration
}

// Supervisor starts and stops a fixed number of concurrent Workers sharing
// one Claimer/Settler/Executor, each with an independently generated
// worker ID, generalizing worker.py's Worker-per-thread model.
type Supervisor struct {
	lcBase

	workers []*Worker
	log     *slog.Logger
}

// NewSupervisor constructs count Workers, assigning each a worker ID of the
// form "worker-<8 hex chars>" (matching the original's
// f"worker-{uuid.uuid4().hex[:8]}" scheme).
func NewSupervisor(claimer Claimer, executor *Executor, settler Settler, config SupervisorConfig, log *slog.Logger) *Supervisor {
	count := config.Count
	if count <= 0 {
		count = 1
	}
	workers := make([]*Worker, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("worker-%s", uuid.New().String()[:8])
		wc := WorkerConfig{
			WorkerID:     id,
			LeaseSeconds: config.LeaseSeconds,
			PollInterval: config.PollInterval,
		}
		workers[i] = NewWorker(id, claimer, executor, settler, wc, log)
	}
	return &Supervisor{workers: workers, log: log}
}

// Start begins every Worker's claim-execute-settle loop.
func (s *Supervisor) Start(ctx context.Context) error {
	if err := s.tryStart(); err != nil {
		return err
	}
	for _, w := range s.workers {
		if err := w.Start(ctx); err != nil {
			return err
		}
		s.log.Info("worker started", "worker_id", w.id)
	}
	return nil
}

// Stop signals every Worker to shut down and waits up to timeout for all of
// them to finish, joining their completion in parallel rather than summing
// each one's timeout.
func (s *Supervisor) Stop(timeout time.Duration) error {
	return s.tryStop(timeout, func() internal.DoneChan {
		chans := make([]internal.DoneChan, len(s.workers))
		for i, w := range s.workers {
			ch := make(internal.DoneChan)
			go func(w *Worker, ch internal.DoneChan) {
				defer close(ch)
				// best effort: individual worker timeout errors are
				// logged but do not block joining the others.
				if err := w.Stop(timeout); err != nil {
					s.log.Error("worker stop", "worker_id", w.id, "err", err)
				}
			}(w, ch)
			chans[i] = ch
		}
		return internal.Combine(chans...)
	})
}
