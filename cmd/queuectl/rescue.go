package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq/store"
)

var rescueOlderThanSeconds int

var rescueCmd = &cobra.Command{
	Use:   "rescue",
	Short: "Recovery tools for stuck jobs",
}

var rescueLeasesCmd = &cobra.Command{
	Use:   "leases",
	Short: "Clear expired leases and return jobs to pending",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}
		olderThan := time.Duration(rescueOlderThanSeconds) * time.Second
		ids, err := store.NewRescuer(db).RescueLeases(context.Background(), olderThan, time.Now().UTC())
		if err != nil {
			fatalf("rescue leases: %v", err)
		}
		if len(ids) == 0 {
			fmt.Println("no expired leases found")
			return
		}
		fmt.Printf("cleared leases and returned %d job(s) to pending: %s\n", len(ids), strings.Join(ids, ", "))
	},
}

func init() {
	rescueLeasesCmd.Flags().IntVar(&rescueOlderThanSeconds, "older-than-seconds", 60, "clear leases older than N seconds")
	rescueCmd.AddCommand(rescueLeasesCmd)
}
