package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

var _ repository.LineupRepository = (*lineupRepository)(nil)

type lineupRepository struct {
	db *sql.DB
}

func NewLineupRepository(db *sql.DB) *lineupRepository {
	return &lineupRepository{db: db}
}

// Create сохраняет построение вместе с позициями
func (r *lineupRepository) Create(ctx context.Context, lineup *domain.Lineup) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO lineups (choreo_id, start_count, end_count, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, query, lineup.ChoreoID, lineup.StartCount, lineup.EndCount, time.Now()).
		Scan(&lineup.ID, &lineup.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return repository.ErrChoreoNotFound
		}
		return err
	}

	positions := NewPositionRepositoryWithTx(tx)
	for i := range lineup.Positions {
		lineup.Positions[i].LineupID = lineup.ID
		if err := positions.Create(ctx, &lineup.Positions[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *lineupRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lineups WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrLineupNotFound
	}

	return nil
}
