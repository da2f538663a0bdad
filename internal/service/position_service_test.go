package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const positionWritesHelp = "Position updates by ordering guard result (accepted, unchanged, rejected)"

var positionColumns = []string{
	"id", "lineup_id", "member_id", "x", "y", "time_of_manual_update", "created_at", "updated_at",
}

func newPositionService(t *testing.T, now time.Time) (PositionService, sqlmock.Sqlmock, *prometheus.Registry) {
	t.Helper()
	db, mockDB := setupMockDBForService(t)
	m, reg := setupMetrics()
	guard := timeline.NewOrderingGuard(func() time.Time { return now })
	return NewPositionService(db, guard, m, logging.Nop()), mockDB, reg
}

func TestPositionService_UpdatePosition(t *testing.T) {
	stored := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	created := stored.Add(-time.Hour)

	storedRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(positionColumns).AddRow(100, 20, 10, 10.0, 20.0, stored, created, nil)
	}

	t.Run("более новая запись принимается", func(t *testing.T) {
		svc, mockDB, reg := newPositionService(t, stored)
		incoming := stored.Add(time.Second)

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("FOR UPDATE").WithArgs(100).WillReturnRows(storedRow())
		mockDB.ExpectQuery("UPDATE positions").
			WithArgs(55.0, 20.0, incoming, sqlmock.AnyArg(), 100).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
		mockDB.ExpectCommit()

		pos, err := svc.UpdatePosition(context.Background(), 100, domain.PositionUpdate{
			X:                  ptr(55.0),
			TimeOfManualUpdate: &incoming,
		})

		require.NoError(t, err)
		assert.Equal(t, 55.0, pos.X)
		assert.Equal(t, 20.0, pos.Y)
		require.NotNil(t, pos.TimeOfManualUpdate)
		assert.True(t, incoming.Equal(*pos.TimeOfManualUpdate))
		require.NoError(t, mockDB.ExpectationsWereMet())
		assertCounter(t, reg, "choreo_timeline_position_writes_total", positionWritesHelp,
			`choreo_timeline_position_writes_total{result="accepted"} 1`+"\n")
	})

	t.Run("устаревшая запись отклоняется", func(t *testing.T) {
		svc, mockDB, reg := newPositionService(t, stored)
		incoming := stored.Add(-time.Minute)

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("FOR UPDATE").WithArgs(100).WillReturnRows(storedRow())
		mockDB.ExpectRollback()

		pos, err := svc.UpdatePosition(context.Background(), 100, domain.PositionUpdate{
			X:                  ptr(55.0),
			TimeOfManualUpdate: &incoming,
		})

		assert.Nil(t, pos)
		assert.True(t, errors.Is(err, domain.ErrRequestOrder))
		var orderErr *domain.RequestOrderError
		require.True(t, errors.As(err, &orderErr))
		assert.Equal(t, 100, orderErr.PositionID)
		require.NoError(t, mockDB.ExpectationsWereMet())
		assertCounter(t, reg, "choreo_timeline_position_writes_total", positionWritesHelp,
			`choreo_timeline_position_writes_total{result="rejected"} 1`+"\n")
	})

	t.Run("равная метка с другими координатами отклоняется", func(t *testing.T) {
		svc, mockDB, _ := newPositionService(t, stored)

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("FOR UPDATE").WithArgs(100).WillReturnRows(storedRow())
		mockDB.ExpectRollback()

		_, err := svc.UpdatePosition(context.Background(), 100, domain.PositionUpdate{
			X:                  ptr(11.0),
			TimeOfManualUpdate: ptr(stored),
		})

		assert.ErrorIs(t, err, domain.ErrRequestOrder)
		require.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("повтор сохраненной записи ничего не пишет", func(t *testing.T) {
		svc, mockDB, reg := newPositionService(t, stored)

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("FOR UPDATE").WithArgs(100).WillReturnRows(storedRow())
		mockDB.ExpectRollback()

		pos, err := svc.UpdatePosition(context.Background(), 100, domain.PositionUpdate{
			X:                  ptr(10.0),
			Y:                  ptr(20.0),
			TimeOfManualUpdate: ptr(stored),
		})

		require.NoError(t, err)
		assert.Equal(t, 10.0, pos.X)
		require.NoError(t, mockDB.ExpectationsWereMet())
		assertCounter(t, reg, "choreo_timeline_position_writes_total", positionWritesHelp,
			`choreo_timeline_position_writes_total{result="unchanged"} 1`+"\n")
	})

	t.Run("без метки ставится текущее время", func(t *testing.T) {
		now := stored.Add(time.Hour)
		svc, mockDB, _ := newPositionService(t, now)

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("FOR UPDATE").WithArgs(100).WillReturnRows(storedRow())
		mockDB.ExpectQuery("UPDATE positions").
			WithArgs(10.0, 90.0, now, sqlmock.AnyArg(), 100).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
		mockDB.ExpectCommit()

		pos, err := svc.UpdatePosition(context.Background(), 100, domain.PositionUpdate{Y: ptr(90.0)})

		require.NoError(t, err)
		assert.True(t, now.Equal(*pos.TimeOfManualUpdate))
		require.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("ошибка: позиция не найдена", func(t *testing.T) {
		svc, mockDB, _ := newPositionService(t, stored)

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("FOR UPDATE").WithArgs(404).WillReturnError(sql.ErrNoRows)
		mockDB.ExpectRollback()

		_, err := svc.UpdatePosition(context.Background(), 404, domain.PositionUpdate{X: ptr(1.0)})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("ошибка валидации не открывает транзакцию", func(t *testing.T) {
		svc, mockDB, _ := newPositionService(t, stored)

		_, err := svc.UpdatePosition(context.Background(), 100, domain.PositionUpdate{X: ptr(150.0)})

		assert.ErrorIs(t, err, domain.ErrValidation)
		require.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("ошибка записи откатывает транзакцию", func(t *testing.T) {
		svc, mockDB, _ := newPositionService(t, stored)

		mockDB.ExpectBegin()
		mockDB.ExpectQuery("FOR UPDATE").WithArgs(100).WillReturnRows(storedRow())
		mockDB.ExpectQuery("UPDATE positions").WillReturnError(errors.New("disk full"))
		mockDB.ExpectRollback()

		_, err := svc.UpdatePosition(context.Background(), 100, domain.PositionUpdate{
			X:                  ptr(30.0),
			TimeOfManualUpdate: ptr(stored.Add(time.Minute)),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		require.NoError(t, mockDB.ExpectationsWereMet())
	})
}
