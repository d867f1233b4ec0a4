package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq/job"
	"github.com/jobq/jobq/store"
)

var (
	enqueueID         string
	enqueueCommand    string
	enqueueMaxRetries int
	enqueueTimeout    int
	enqueuePriority   int
	enqueueRunAt      string
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue",
	Short: "Add a new job to the queue",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}

		var runAt *time.Time
		if enqueueRunAt != "" {
			t, err := parseRunAt(enqueueRunAt)
			if err != nil {
				fatalf("invalid --run-at value %q: %v", enqueueRunAt, err)
			}
			runAt = t
		}

		sub := &job.Submission{
			ID:       enqueueID,
			Command:  enqueueCommand,
			Priority: enqueuePriority,
			RunAt:    runAt,
		}
		if cmd.Flags().Changed("max-retries") {
			sub.MaxRetries = &enqueueMaxRetries
		}
		if cmd.Flags().Changed("timeout-seconds") {
			sub.TimeoutSeconds = &enqueueTimeout
		}

		submitter := store.NewSubmitter(db, store.NewConfigStore(db))
		if err := submitter.Submit(context.Background(), sub); err != nil {
			fatalf("enqueue job %s: %v", enqueueID, err)
		}

		extra := ""
		if runAt != nil {
			extra = fmt.Sprintf(", run_at=%s", runAt.Format(time.RFC3339))
		}
		fmt.Printf("job %s enqueued (priority=%d%s)\n", enqueueID, enqueuePriority, extra)
	},
}

// parseRunAt accepts either an RFC3339 timestamp or "+N" for N seconds from
// now, matching cli.py's enqueue --run-at convention.
func parseRunAt(s string) (*time.Time, error) {
	if strings.HasPrefix(s, "+") {
		secs, err := strconv.Atoi(s[1:])
		if err != nil {
			return nil, err
		}
		t := time.Now().UTC().Add(time.Duration(secs) * time.Second)
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

func init() {
	enqueueCmd.Flags().StringVar(&enqueueID, "id", "", "job ID (required)")
	enqueueCmd.Flags().StringVar(&enqueueCommand, "command", "", "shell command to run (required)")
	enqueueCmd.Flags().IntVar(&enqueueMaxRetries, "max-retries", 0, "maximum retries (overrides default_max_retries config)")
	enqueueCmd.Flags().IntVar(&enqueueTimeout, "timeout-seconds", 0, "max runtime before the attempt is killed")
	enqueueCmd.Flags().IntVar(&enqueuePriority, "priority", 0, "job priority; higher runs first")
	enqueueCmd.Flags().StringVar(&enqueueRunAt, "run-at", "", "RFC3339 timestamp or +seconds delay")
	_ = enqueueCmd.MarkFlagRequired("id")
	_ = enqueueCmd.MarkFlagRequired("command")
}
