package job_test

import (
	"testing"

	"github.com/jobq/jobq/job"
)

func TestStateRoundTrip(t *testing.T) {
	states := []job.State{job.Pending, job.Processing, job.Failed, job.Completed, job.Dead}
	for _, s := range states {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got job.State
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: %v != %v", got, s)
		}
	}
}

func TestParseStateRejectsUnknown(t *testing.T) {
	if _, err := job.ParseState("bogus"); err == nil {
		t.Fatal("expected an error for an unrecognized state")
	}
}

func TestTerminalStates(t *testing.T) {
	for _, s := range []job.State{job.Completed, job.Dead} {
		if !s.Terminal() {
			t.Fatalf("expected %v to be terminal", s)
		}
	}
	for _, s := range []job.State{job.Pending, job.Processing, job.Failed} {
		if s.Terminal() {
			t.Fatalf("expected %v to not be terminal", s)
		}
	}
}
