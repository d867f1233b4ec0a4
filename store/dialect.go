package store

import (
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// SQLiteOpen opens an embedded SQLite-backed *bun.DB at path (or
// "file::memory:?..." for an in-memory database). WAL mode and a
// busy_timeout large enough to ride out writer contention are the caller's
// responsibility to request via DSN query parameters, per the teacher's
// documented recommendation.
func SQLiteOpen(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite's single-writer journal mode means concurrent *sql.DB
	// connections serialize writes anyway; capping the pool avoids
	// spurious "database is locked" errors surfacing as Go errors instead
	// of being queued by the driver.
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// PostgresOpen opens a PostgreSQL-backed *bun.DB via pgx's database/sql
// driver, for deployments that outgrow the embedded SQLite backend (the
// bun backend is dialect-agnostic; only this opener and InitDB's table
// definitions need to be portable, which they are).
func PostgresOpen(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, pgdialect.New()), nil
}
