package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq/job"
	"github.com/jobq/jobq/store"
)

var listState string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs in the queue",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}

		state := job.Unknown
		if listState != "" {
			state, err = job.ParseState(listState)
			if err != nil {
				fatalf("invalid --state value %q: %v", listState, err)
			}
		}

		jobs, err := store.NewObserver(db).List(context.Background(), state, 0)
		if err != nil {
			fatalf("list jobs: %v", err)
		}
		if len(jobs) == 0 {
			fmt.Println("no jobs found")
			return
		}
		for _, jb := range jobs {
			fmt.Printf("%s | %s | %s | attempts=%d/%d | priority=%d | run_at=%s | duration=%s\n",
				jb.ID, jb.Command, jb.State, jb.Attempts, jb.MaxRetries, jb.Priority,
				formatTime(jb.RunAt), formatDuration(jb.DurationSeconds))
		}
	},
}

func init() {
	listCmd.Flags().StringVar(&listState, "state", "", "filter by state (pending, processing, failed, completed, dead)")
}
