package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq/store"
)

var showCmd = &cobra.Command{
	Use:   "show JOB_ID",
	Short: "Show details of a single job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}

		jb, err := store.NewObserver(db).Get(context.Background(), args[0])
		if err != nil {
			fatalf("get job %s: %v", args[0], err)
		}
		if jb == nil {
			fmt.Printf("job %s not found\n", args[0])
			return
		}

		fmt.Printf("job %s\n", jb.ID)
		fmt.Printf("  command:    %s\n", jb.Command)
		fmt.Printf("  state:      %s\n", jb.State)
		fmt.Printf("  attempts:   %d/%d\n", jb.Attempts, jb.MaxRetries)
		fmt.Printf("  priority:   %d\n", jb.Priority)
		fmt.Printf("  run_at:     %s\n", formatTime(jb.RunAt))
		fmt.Printf("  next_run:   %s\n", formatTime(jb.NextRunAt))
		fmt.Printf("  worker_id:  %s\n", formatString(jb.WorkerID))
		fmt.Printf("  started_at: %s\n", formatTime(jb.StartedAt))
		fmt.Printf("  finished:   %s\n", formatTime(jb.FinishedAt))
		fmt.Printf("  exit_code:  %s\n", formatInt(jb.ExitCode))
		fmt.Printf("  duration:   %s\n", formatDuration(jb.DurationSeconds))
		fmt.Printf("  error:      %s\n", formatString(jb.Error))
		if jb.Output != nil {
			fmt.Printf("  output:\n%s\n", *jb.Output)
		}
	},
}
