package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq/store"
)

var dlqCmd = &cobra.Command{
	Use:   "dlq",
	Short: "Dead letter queue operations",
}

var dlqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs in the dead letter queue",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}
		jobs, err := store.NewAdministrator(db).DLQList(context.Background())
		if err != nil {
			fatalf("dlq list: %v", err)
		}
		if len(jobs) == 0 {
			fmt.Println("no jobs in the dead letter queue")
			return
		}
		for _, jb := range jobs {
			fmt.Printf("%s | %s | attempts=%d | priority=%d | run_at=%s | duration=%s | error=%s\n",
				jb.ID, jb.Command, jb.Attempts, jb.Priority,
				formatTime(jb.RunAt), formatDuration(jb.DurationSeconds), formatString(jb.Error))
		}
	},
}

var dlqRetryCmd = &cobra.Command{
	Use:   "retry JOB_ID",
	Short: "Retry a dead-lettered job by resetting it to pending",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}
		if err := store.NewAdministrator(db).DLQRetry(context.Background(), args[0]); err != nil {
			fatalf("dlq retry %s: %v", args[0], err)
		}
		fmt.Printf("job %s moved back to pending\n", args[0])
	},
}

func init() {
	dlqCmd.AddCommand(dlqListCmd)
	dlqCmd.AddCommand(dlqRetryCmd)
}
