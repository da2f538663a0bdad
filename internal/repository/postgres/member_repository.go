package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

var _ repository.MemberRepository = (*memberRepository)(nil)

type memberRepository struct {
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{executor: db}
}

func NewMemberRepositoryWithTx(tx *sql.Tx) *memberRepository {
	return &memberRepository{executor: tx}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (team_id, name, nickname, abbreviation, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		member.TeamID,
		member.Name,
		member.Nickname,
		member.Abbreviation,
		time.Now(),
	).Scan(&member.ID, &member.CreatedAt)
}

func (r *memberRepository) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	query := `
		SELECT id, team_id, name, nickname, abbreviation, created_at
		FROM members
		WHERE id = $1
	`

	m := &domain.Member{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.TeamID,
		&m.Name,
		&m.Nickname,
		&m.Abbreviation,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrMemberNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *memberRepository) GetByTeamID(ctx context.Context, teamID int) ([]domain.Member, error) {
	query := `
		SELECT id, team_id, name, nickname, abbreviation, created_at
		FROM members
		WHERE team_id = $1
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		var m domain.Member
		err := rows.Scan(
			&m.ID,
			&m.TeamID,
			&m.Name,
			&m.Nickname,
			&m.Abbreviation,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}
