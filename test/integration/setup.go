//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB поднимает отдельный Postgres на тест и накатывает все up-миграции
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx,
		"postgres:17.7",
		postgres.WithDatabase("choreo_test"),
		postgres.WithUsername("choreo"),
		postgres.WithPassword("choreo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	// equivalent of testcontainers.CleanupContainer (added in v0.34, which requires Go 1.22)
	t.Cleanup(func() {
		if ctr != nil {
			require.NoError(t, ctr.Terminate(context.Background()))
		}
	})
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.PingContext(ctx))

	for _, path := range upMigrations(t) {
		migration, err := os.ReadFile(path)
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, string(migration))
		require.NoError(t, err, "не удалось применить миграцию %s", filepath.Base(path))
	}

	return db
}

// upMigrations ищет каталог migrations вверх от текущего и возвращает файлы по порядку
func upMigrations(t *testing.T) []string {
	t.Helper()

	for _, dir := range []string{
		filepath.Join("..", "..", "migrations"),
		filepath.Join("..", "migrations"),
		"migrations",
	} {
		files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
		require.NoError(t, err)
		if len(files) > 0 {
			sort.Strings(files)
			return files
		}
	}

	t.Fatal("не найдены файлы migrations/*.up.sql")
	return nil
}
