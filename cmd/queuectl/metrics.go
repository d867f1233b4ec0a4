package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq/store"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show job metrics summary",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}

		m, err := store.NewObserver(db).Metrics(context.Background())
		if err != nil {
			fatalf("metrics: %v", err)
		}
		fmt.Println("metrics summary:")
		fmt.Printf("  completed jobs: %d\n", m.Completed)
		fmt.Printf("  failed jobs:    %d\n", m.Failed)
		fmt.Printf("  dead jobs:      %d\n", m.Dead)
		if m.HasAvgDurationStats {
			fmt.Printf("  avg duration (s): %.3f\n", m.AvgDurationSeconds)
		} else {
			fmt.Println("  avg duration: n/a")
		}
	},
}
