package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobq/jobq"
	"github.com/jobq/jobq/store"
)

var (
	workerCount        int
	workerLeaseSeconds int
	workerPollInterval float64
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start background workers with leases and graceful shutdown",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fatalf("open db: %v", err)
		}
		cfg := store.NewConfigStore(db)
		ctx := context.Background()

		leaseSeconds := workerLeaseSeconds
		if !cmd.Flags().Changed("lease-seconds") {
			leaseSeconds = configInt(ctx, cfg, "lease_seconds", 30)
		}
		pollInterval := workerPollInterval
		if !cmd.Flags().Changed("poll-interval") {
			pollInterval = configFloat(ctx, cfg, "poll_interval", 1.0)
		}

		sup := jobq.NewSupervisor(
			store.NewClaimer(db),
			jobq.NewExecutor(),
			store.NewSettler(db, cfg),
			jobq.SupervisorConfig{
				Count:        workerCount,
				LeaseSeconds: leaseSeconds,
				PollInterval: time.Duration(pollInterval * float64(time.Second)),
			},
			slog.Default(),
		)

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if err := sup.Start(runCtx); err != nil {
			fatalf("start workers: %v", err)
		}
		fmt.Printf("started %d workers (lease=%ds, poll=%.1fs)\n", workerCount, leaseSeconds, pollInterval)
		fmt.Println("press Ctrl+C to stop workers gracefully")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		fmt.Println("\nstopping workers ...")
		cancel()
		if err := sup.Stop(5 * time.Second); err != nil {
			fatalf("stop workers: %v", err)
		}
		fmt.Println("workers stopped cleanly")
	},
}

func configInt(ctx context.Context, cfg *store.ConfigStore, key string, def int) int {
	raw, err := cfg.GetConfig(ctx, key, strconv.Itoa(def))
	if err != nil {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func configFloat(ctx context.Context, cfg *store.ConfigStore, key string, def float64) float64 {
	raw, err := cfg.GetConfig(ctx, key, strconv.FormatFloat(def, 'f', -1, 64))
	if err != nil {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func init() {
	workerCmd.Flags().IntVar(&workerCount, "count", 1, "number of workers to start")
	workerCmd.Flags().IntVar(&workerLeaseSeconds, "lease-seconds", 30, "lease duration to prevent double-claims (uses config if unset)")
	workerCmd.Flags().Float64Var(&workerPollInterval, "poll-interval", 1.0, "idle polling interval in seconds (uses config if unset)")
}
