package main

import (
	"database/sql"
	"embed"
	"flag"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// queue-migrate applies the jobq schema migrations to a SQLite or
// PostgreSQL database using goose with an embedded migration directory,
// generalizing migrate.py's one-shot ALTER TABLE script into a versioned,
// repeatable migration history.
func main() {
	driver := flag.String("driver", "sqlite", "database driver: sqlite or postgres")
	dsn := flag.String("dsn", "queue.db", "data source name / connection string")
	down := flag.Bool("down", false, "roll back the most recent migration instead of applying pending ones")
	status := flag.Bool("status", false, "print migration status and exit")
	flag.Parse()

	sqlDriver, dialect := "sqlite", "sqlite3"
	if *driver == "postgres" {
		sqlDriver, dialect = "pgx", "postgres"
	}

	db, err := sql.Open(sqlDriver, *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect(dialect); err != nil {
		fmt.Fprintf(os.Stderr, "set dialect: %v\n", err)
		os.Exit(1)
	}
	goose.SetBaseFS(embedMigrations)

	switch {
	case *status:
		err = goose.Status(db, "migrations")
	case *down:
		err = goose.Down(db, "migrations")
	default:
		err = goose.Up(db, "migrations")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}
