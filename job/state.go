package job

import "fmt"

// State represents the current lifecycle state of a Job.
//
// The state machine is:
//
//	Pending            -> Processing
//	Processing         -> Completed
//	Processing         -> Failed      (attempts' < max_retries)
//	Processing         -> Dead        (attempts' >= max_retries)
//	Processing         -> Pending     (lease expiry / rescue)
//	Failed (ready)     -> Processing
//	Dead               -> Pending     (administrative dlq retry only)
//
// Completed and Dead are absorbing under normal operation (I6): only
// administrative action resets them.
type State uint8

const (
	// Unknown is the zero value, reserved for "no filter" in List calls.
	Unknown State = iota

	// Pending indicates the job is eligible for claiming (subject to RunAt;
	// NextRunAt is not consulted for Pending jobs).
	Pending

	// Processing indicates a worker has claimed the job under a lease. The
	// lease may since have expired, in which case the job can be claimed
	// again or rescued.
	Processing

	// Failed indicates an attempt ended unsuccessfully but attempts remain;
	// the job becomes claimable again once NextRunAt has passed.
	Failed

	// Completed is terminal: the job ran to exit code 0 and will not be
	// retried.
	Completed

	// Dead is terminal: attempts reached MaxRetries without success.
	Dead
)

func stateToString(s State) string {
	switch s {
	case Pending:
		return "pending"
	case Processing:
		return "processing"
	case Failed:
		return "failed"
	case Completed:
		return "completed"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

func stateFromString(s string) (State, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "processing":
		return Processing, nil
	case "failed":
		return Failed, nil
	case "completed":
		return Completed, nil
	case "dead":
		return Dead, nil
	case "unknown", "":
		return Unknown, nil
	default:
		return 0, fmt.Errorf("unknown job state: %s", s)
	}
}

// ParseState converts a string representation of a state into a State value.
func ParseState(s string) (State, error) {
	return stateFromString(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(stateToString(s)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	state, err := stateFromString(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// String returns the canonical lower-case representation of the state.
func (s State) String() string {
	return stateToString(s)
}

// Terminal reports whether s is an absorbing state under normal operation.
func (s State) Terminal() bool {
	return s == Completed || s == Dead
}
