package service

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func setupMockDBForService(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func setupMetrics() (*metrics.Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return metrics.NewWithRegistry(reg), reg
}

// assertCounter сравнивает значения счетчика с ожидаемой экспозицией
func assertCounter(t *testing.T, reg *prometheus.Registry, name, help, samples string) {
	t.Helper()
	expected := "# HELP " + name + " " + help + "\n# TYPE " + name + " counter\n" + samples
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), name))
}

func ptr[T any](v T) *T {
	return &v
}
