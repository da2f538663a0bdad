package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

const positionColumns = `id, lineup_id, member_id, x, y, time_of_manual_update, created_at, updated_at`

var _ repository.PositionRepository = (*positionRepository)(nil)

type positionRepository struct {
	executor DBExecutor
}

func NewPositionRepository(db *sql.DB) *positionRepository {
	return &positionRepository{executor: db}
}

func NewPositionRepositoryWithTx(tx *sql.Tx) *positionRepository {
	return &positionRepository{executor: tx}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosition(row rowScanner) (*domain.Position, error) {
	p := &domain.Position{}
	var manual, updatedAt sql.NullTime
	err := row.Scan(
		&p.ID,
		&p.LineupID,
		&p.MemberID,
		&p.X,
		&p.Y,
		&manual,
		&p.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.TimeOfManualUpdate = nullTimePtr(manual)
	p.UpdatedAt = nullTimePtr(updatedAt)
	return p, nil
}

func (r *positionRepository) Create(ctx context.Context, pos *domain.Position) error {
	query := `
		INSERT INTO positions (lineup_id, member_id, x, y, time_of_manual_update, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		pos.LineupID,
		pos.MemberID,
		pos.X,
		pos.Y,
		pos.TimeOfManualUpdate,
		time.Now(),
	).Scan(&pos.ID, &pos.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return repository.ErrReferencedRowMissing
		}
		return err
	}

	return nil
}

func (r *positionRepository) GetByID(ctx context.Context, id int) (*domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *positionRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *positionRepository) get(ctx context.Context, query string, id int) (*domain.Position, error) {
	p, err := scanPosition(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrPositionNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *positionRepository) Update(ctx context.Context, pos *domain.Position) error {
	query := `
		UPDATE positions
		SET x = $1, y = $2, time_of_manual_update = $3, updated_at = $4
		WHERE id = $5
		RETURNING updated_at
	`

	var updatedAt time.Time
	err := r.executor.QueryRowContext(ctx, query, pos.X, pos.Y, pos.TimeOfManualUpdate, time.Now(), pos.ID).
		Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrPositionNotFound
		}
		return err
	}
	pos.UpdatedAt = &updatedAt

	return nil
}

// DeleteByMemberInChoreo удаляет позиции участника во всех построениях хореографии
func (r *positionRepository) DeleteByMemberInChoreo(ctx context.Context, choreoID, memberID int) (int64, error) {
	query := `
		DELETE FROM positions p
		USING lineups l
		WHERE p.lineup_id = l.id AND l.choreo_id = $1 AND p.member_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, choreoID, memberID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
