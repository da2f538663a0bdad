package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipationRepository_Create(t *testing.T) {
	t.Run("добавление участника", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectExec("INSERT INTO participations").
			WithArgs(5, 10, "#e6194b", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewParticipationRepository(db).Create(context.Background(),
			&domain.Participation{ChoreoID: 5, MemberID: 10, Color: "#e6194b"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("участник уже добавлен", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectExec("INSERT INTO participations").WillReturnError(&pgconn.PgError{Code: "23505"})

		err := NewParticipationRepository(db).Create(context.Background(), &domain.Participation{ChoreoID: 5, MemberID: 10})

		assert.ErrorIs(t, err, repository.ErrParticipationExists)
	})

	t.Run("несуществующий участник", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectExec("INSERT INTO participations").WillReturnError(&pgconn.PgError{Code: "23503"})

		err := NewParticipationRepository(db).Create(context.Background(), &domain.Participation{ChoreoID: 5, MemberID: 999})

		assert.ErrorIs(t, err, repository.ErrReferencedRowMissing)
	})
}

func TestParticipationRepository_Delete(t *testing.T) {
	t.Run("удаление", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectExec("DELETE FROM participations").WithArgs(5, 10).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewParticipationRepository(db).Delete(context.Background(), 5, 10))
	})

	t.Run("участие не найдено", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectExec("DELETE FROM participations").WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewParticipationRepository(db).Delete(context.Background(), 5, 10)
		assert.ErrorIs(t, err, repository.ErrParticipationNotFound)
	})
}

func TestParticipationRepository_ColorsInUse(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT color FROM participations").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"color"}).AddRow("#e6194b").AddRow("#3cb44b"))

	colors, err := NewParticipationRepository(db).ColorsInUse(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"#e6194b", "#3cb44b"}, colors)
	assert.NoError(t, mock.ExpectationsWereMet())
}
