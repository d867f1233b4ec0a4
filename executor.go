package jobq

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/jobq/jobq/job"
)

// Executor runs a claimed job as a child process and reports its outcome.
// Executor never touches the persistent store.
type Executor struct {
	// Shell is the interpreter used to run Job.Command, invoked as
	// Shell[0] Shell[1:]... <command>. Defaults to {"sh", "-c"}.
	Shell []string
}

// NewExecutor returns an Executor that runs commands via "sh -c".
func NewExecutor() *Executor {
	return &Executor{Shell: []string{"sh", "-c"}}
}

func (e *Executor) shell() []string {
	if len(e.Shell) == 0 {
		return []string{"sh", "-c"}
	}
	return e.Shell
}

// Execute spawns jb.Command as a shell command, capturing combined
// stdout+stderr in memory. If jb.TimeoutSeconds is set, the child is killed
// on expiry and the Outcome is TimedOut with any partially captured output
// discarded.
//
// Spawn errors, signal-terminated children and non-zero exits are all
// reported as Failed with whatever exit code the OS surfaces (spec §4.3);
// Execute itself never returns a non-nil error for those cases, only for
// programming errors such as a nil job.
func (e *Executor) Execute(ctx context.Context, jb *job.Job) (Outcome, error) {
	if jb == nil {
		return Outcome{}, errors.New("jobq: execute nil job")
	}

	// The child is deliberately detached from ctx's cancellation: worker
	// shutdown must not kill an in-flight job. Only the per-attempt
	// timeout, if any, bounds the child's lifetime.
	runCtx := context.WithoutCancel(ctx)
	var cancel context.CancelFunc
	if jb.TimeoutSeconds != nil {
		runCtx, cancel = context.WithTimeout(runCtx, time.Duration(*jb.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	shell := e.shell()
	args := append(append([]string{}, shell[1:]...), jb.Command)
	cmd := exec.CommandContext(runCtx, shell[0], args...)

	// combined holds stdout+stderr interleaved for Output; stderr alone
	// feeds the Error diagnostic on failure (spec §4.3, §9 capture notes).
	var combined, stderr bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = io.MultiWriter(&combined, &stderr)

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if runCtx.Err() == context.DeadlineExceeded {
		return Outcome{
			Kind:     OutcomeTimedOut,
			ExitCode: -1,
			Error:    "timeout",
			Duration: duration,
		}, nil
	}

	if err == nil {
		return Outcome{
			Kind:     OutcomeCompleted,
			ExitCode: 0,
			Output:   combined.String(),
			Duration: duration,
		}, nil
	}

	exitCode := -1
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	return Outcome{
		Kind:     OutcomeFailed,
		ExitCode: exitCode,
		Output:   combined.String(),
		Error:    stderr.String(),
		Duration: duration,
	}, nil
}
