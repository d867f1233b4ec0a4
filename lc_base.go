package jobq

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/jobq/jobq/internal"
)

const (
	stopped = iota
	started
)

var (
	// ErrDoubleStarted is returned when Start is called on a Worker or
	// Supervisor that has already been started.
	ErrDoubleStarted = errors.New("jobq: double start")

	// ErrDoubleStopped is returned when Stop is called on a Worker or
	// Supervisor that is not currently running.
	ErrDoubleStopped = errors.New("jobq: double stop")

	// ErrStopTimeout is returned when shutdown does not complete within
	// the provided timeout. The process may still be terminating in the
	// background; no in-flight job's outcome is lost (spec §4.5).
	ErrStopTimeout = errors.New("jobq: stop timeout")
)

type lcBase struct {
	state atomic.Int32
}

func (lb *lcBase) tryStart() error {
	if !lb.state.CompareAndSwap(stopped, started) {
		return ErrDoubleStarted
	}
	return nil
}

func (lb *lcBase) tryStop(timeout time.Duration, df internal.DoneFunc) error {
	if !lb.state.CompareAndSwap(started, stopped) {
		return ErrDoubleStopped
	}
	done := df()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}
