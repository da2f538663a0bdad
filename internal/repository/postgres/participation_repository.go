package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

var _ repository.ParticipationRepository = (*participationRepository)(nil)

type participationRepository struct {
	executor DBExecutor
}

func NewParticipationRepository(db *sql.DB) *participationRepository {
	return &participationRepository{executor: db}
}

func NewParticipationRepositoryWithTx(tx *sql.Tx) *participationRepository {
	return &participationRepository{executor: tx}
}

func (r *participationRepository) Create(ctx context.Context, p *domain.Participation) error {
	query := `
		INSERT INTO participations (choreo_id, member_id, color, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.executor.ExecContext(ctx, query, p.ChoreoID, p.MemberID, p.Color, time.Now())
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return repository.ErrParticipationExists
		case pgForeignKeyViolation:
			return repository.ErrReferencedRowMissing
		}
		return err
	}

	return nil
}

func (r *participationRepository) Delete(ctx context.Context, choreoID, memberID int) error {
	result, err := r.executor.ExecContext(
		ctx,
		`DELETE FROM participations WHERE choreo_id = $1 AND member_id = $2`,
		choreoID,
		memberID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrParticipationNotFound
	}

	return nil
}

// ColorsInUse - цвета, уже выданные участникам хореографии
func (r *participationRepository) ColorsInUse(ctx context.Context, choreoID int) ([]string, error) {
	rows, err := r.executor.QueryContext(
		ctx,
		`SELECT color FROM participations WHERE choreo_id = $1 ORDER BY created_at, member_id`,
		choreoID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colors := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}

	return colors, rows.Err()
}
