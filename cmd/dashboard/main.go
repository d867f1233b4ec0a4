package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/jobq/jobq/store"

	_ "modernc.org/sqlite"
)

// dashboard serves a read-only view of a jobq queue database, generalizing
// dashboard.py's FastAPI routes into gorilla/mux handlers over html/template.
// It never mutates queue state: every route is a GET backed by Observer,
// Administrator.DLQList or ConfigStore reads.
type dashboard struct {
	observer *store.Observer
	dlq      *store.Administrator
	config   *store.ConfigStore
	tmpl     *templates
}

func main() {
	dbPath := flag.String("db", "queue.db", "path to the SQLite queue database")
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := openDB(*dbPath)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}

	tmpl, err := loadTemplates()
	if err != nil {
		logger.Error("load templates", "error", err)
		os.Exit(1)
	}

	d := &dashboard{
		observer: store.NewObserver(db),
		dlq:      store.NewAdministrator(db),
		config:   store.NewConfigStore(db),
		tmpl:     tmpl,
	}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(loggingMiddleware(logger))
	router.HandleFunc("/", d.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/job/{id}", d.handleJob).Methods(http.MethodGet)
	router.HandleFunc("/metrics", d.handleMetrics).Methods(http.MethodGet)
	router.HandleFunc("/dlq", d.handleDLQ).Methods(http.MethodGet)
	router.HandleFunc("/config", d.handleConfig).Methods(http.MethodGet)

	logger.Info("dashboard listening", "addr", *addr, "db", *dbPath)
	if err := http.ListenAndServe(*addr, router); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

func openDB(path string) (*bun.DB, error) {
	sqlDB, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path))
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

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Info("request", "method", r.Method, "path", r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
