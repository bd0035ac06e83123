// Package testutil provides shared helpers for integration tests.
// Helpers skip the calling test when TEST_DATABASE_URL is not set, so unit
// tests run without a database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
)

// NewPool opens a *pgxpool.Pool on TEST_DATABASE_URL and closes it when the
// test finishes. Repo tests usually Begin a transaction on it and roll back.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB on TEST_DATABASE_URL through the pgx database/sql
// driver, for goose. The connection is closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := OpenSQLDB(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB is OpenSQLDB for TestMain, where no *testing.T is available.
// It panics on error. Callers close the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := OpenSQLDB(context.Background(), dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: " + err.Error())
	}
	return db
}

// OpenSQLDB opens and pings a *sql.DB for dsn using the "pgx" driver.
func OpenSQLDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
