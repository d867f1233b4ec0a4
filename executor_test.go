package jobq_test

import (
	"context"
	"testing"
	"time"

	"github.com/jobq/jobq"
	"github.com/jobq/jobq/job"
)

func TestExecutorCompleted(t *testing.T) {
	exec := jobq.NewExecutor()
	jb := &job.Job{ID: "j1", Command: "echo hello"}

	outcome, err := exec.Execute(context.Background(), jb)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != jobq.OutcomeCompleted {
		t.Fatalf("expected Completed, got %v", outcome.Kind)
	}
	if outcome.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", outcome.ExitCode)
	}
}

func TestExecutorFailed(t *testing.T) {
	exec := jobq.NewExecutor()
	jb := &job.Job{ID: "j1", Command: "exit 7"}

	outcome, err := exec.Execute(context.Background(), jb)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != jobq.OutcomeFailed {
		t.Fatalf("expected Failed, got %v", outcome.Kind)
	}
	if outcome.ExitCode != 7 {
		t.Fatalf("expected exit code 7, got %d", outcome.ExitCode)
	}
}

func TestExecutorSurvivesContextCancellation(t *testing.T) {
	exec := jobq.NewExecutor()
	jb := &job.Job{ID: "j1", Command: "sleep 1"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	outcome, err := exec.Execute(ctx, jb)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != jobq.OutcomeCompleted {
		t.Fatalf("expected the in-flight command to run to completion despite shutdown, got %v", outcome.Kind)
	}
	if time.Since(start) < time.Second {
		t.Fatal("expected the command to run its full duration, not be killed by ctx cancellation")
	}
}

func TestExecutorTimesOut(t *testing.T) {
	exec := jobq.NewExecutor()
	timeout := 1
	jb := &job.Job{ID: "j1", Command: "sleep 5", TimeoutSeconds: &timeout}

	start := time.Now()
	outcome, err := exec.Execute(context.Background(), jb)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != jobq.OutcomeTimedOut {
		t.Fatalf("expected TimedOut, got %v", outcome.Kind)
	}
	if time.Since(start) > 4*time.Second {
		t.Fatal("expected timeout to cut the attempt short")
	}
}
