package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/jobq/jobq/store"

	_ "modernc.org/sqlite"
)

var (
	dbPath string

	rootCmd = &cobra.Command{
		Use:   "queuectl",
		Short: "Operate a jobq persistent shell-command queue",
		Long:  `queuectl enqueues, inspects, and administers jobs stored in a jobq queue database.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "queue.db", "path to the SQLite queue database")

	rootCmd.AddCommand(enqueueCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(workerCmd)
	rootCmd.AddCommand(dlqCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(rescueCmd)
}

// openDB opens the queue database named by --db and ensures its schema
// exists, mirroring storage.py's eager CREATE-TABLE-IF-NOT-EXISTS behavior
// on every CLI invocation.
func openDB() (*bun.DB, error) {
	sqlDB, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath))
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if err := store.InitDB(context.Background(), db); err != nil {
		return nil, err
	}
	return db, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
