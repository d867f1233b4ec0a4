package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a summary of job states",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}

		m, err := store.NewObserver(db).Metrics(context.Background())
		if err != nil {
			fatalf("status: %v", err)
		}
		fmt.Println("job status summary:")
		fmt.Printf("  pending:    %d\n", m.Pending)
		fmt.Printf("  processing: %d\n", m.Processing)
		fmt.Printf("  failed:     %d\n", m.Failed)
		fmt.Printf("  completed:  %d\n", m.Completed)
		fmt.Printf("  dead:       %d\n", m.Dead)
	},
}
