// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/deppfellow/school-personnel/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DatabaseURLEnv names the variable pointing integration tests at a
// disposable PostgreSQL database.
const DatabaseURLEnv = "PERSONNEL_TEST_DATABASE_URL"

// NewTestDB migrates the database named by PERSONNEL_TEST_DATABASE_URL,
// empties every table and returns a pool closed at the end of the test.
// The test is skipped when the variable is unset.
func NewTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping database test", DatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	defer conn.Close(ctx)

	logger := zerolog.Nop()
	if err := database.MigrateConn(ctx, &logger, conn); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	if _, err := conn.Exec(ctx, "TRUNCATE professors, albums, musicians, people RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("truncating test database: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("opening test pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}
