package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

var _ repository.TeamRepository = (*teamRepository)(nil)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

// Create создает команду и весь ее состав в одной транзакции
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO teams (name, created_at)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	now := time.Now()
	err = tx.QueryRowContext(ctx, query, team.Name, now).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return repository.ErrTeamNameTaken
		}
		return err
	}
	team.UpdatedAt = nil

	members := NewMemberRepositoryWithTx(tx)
	for i := range team.Members {
		team.Members[i].TeamID = team.ID
		if err := members.Create(ctx, &team.Members[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM teams
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM teams
		WHERE name = $1
	`
	return r.get(ctx, query, name)
}

func (r *teamRepository) get(ctx context.Context, query string, arg any) (*domain.Team, error) {
	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&team.ID,
		&team.Name,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTeamNotFound
		}
		return nil, err
	}
	team.UpdatedAt = nullTimePtr(updatedAt)

	members, err := NewMemberRepository(r.db).GetByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}
