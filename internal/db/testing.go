package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
)

func migrationsPath() string {
	if path := os.Getenv("TEST_MIGRATIONS_PATH"); path != "" {
		return path
	}
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

func applyMigrations(connString string) {
	if _, err := Migrate(connString, migrationsPath()); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}
}

// SkipWithoutTestDatabase skips DB tests unless TEST_POSTGRESQL_URL is set.
func SkipWithoutTestDatabase(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_POSTGRESQL_URL") == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
}

func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	applyMigrations(connString)

	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		panic("Could not connect to the database.")
	}

	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), `TRUNCATE "user", session, password_reset_token, profile, budget, budget_item CASCADE`)
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
