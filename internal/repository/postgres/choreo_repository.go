package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

var _ repository.ChoreoRepository = (*choreoRepository)(nil)

type choreoRepository struct {
	db *sql.DB
}

func NewChoreoRepository(db *sql.DB) *choreoRepository {
	return &choreoRepository{db: db}
}

func (r *choreoRepository) Create(ctx context.Context, choreo *domain.Choreo) error {
	query := `
		INSERT INTO choreos (name, counts, mat_type, team_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		choreo.Name,
		choreo.Counts,
		string(choreo.MatType),
		choreo.TeamID,
		time.Now(),
	).Scan(&choreo.ID, &choreo.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return repository.ErrTeamNotFound
		}
		return err
	}

	return nil
}

func (r *choreoRepository) GetByID(ctx context.Context, id int) (*domain.Choreo, error) {
	query := `
		SELECT id, name, counts, mat_type, team_id, created_at, updated_at
		FROM choreos
		WHERE id = $1
	`

	c := &domain.Choreo{}
	var matType string
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Counts,
		&matType,
		&c.TeamID,
		&c.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrChoreoNotFound
		}
		return nil, err
	}
	c.MatType = domain.MatType(matType)
	c.UpdatedAt = nullTimePtr(updatedAt)

	if c.Lineups, err = r.getLineups(ctx, c.ID); err != nil {
		return nil, err
	}
	if err := r.attachPositions(ctx, c); err != nil {
		return nil, err
	}
	if c.Participations, err = r.getParticipations(ctx, c.ID); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *choreoRepository) getLineups(ctx context.Context, choreoID int) ([]domain.Lineup, error) {
	query := `
		SELECT id, choreo_id, start_count, end_count, created_at
		FROM lineups
		WHERE choreo_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, choreoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lineups := make([]domain.Lineup, 0)
	for rows.Next() {
		var l domain.Lineup
		if err := rows.Scan(&l.ID, &l.ChoreoID, &l.StartCount, &l.EndCount, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Positions = make([]domain.Position, 0)
		lineups = append(lineups, l)
	}

	return lineups, rows.Err()
}

// attachPositions раскладывает позиции всех построений по их lineup_id
func (r *choreoRepository) attachPositions(ctx context.Context, c *domain.Choreo) error {
	query := `
		SELECT p.id, p.lineup_id, p.member_id, p.x, p.y, p.time_of_manual_update, p.created_at, p.updated_at
		FROM positions p
		JOIN lineups l ON l.id = p.lineup_id
		WHERE l.choreo_id = $1
		ORDER BY l.id, p.id
	`

	rows, err := r.db.QueryContext(ctx, query, c.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	byLineup := make(map[int]int, len(c.Lineups))
	for i, l := range c.Lineups {
		byLineup[l.ID] = i
	}

	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return err
		}
		if i, ok := byLineup[p.LineupID]; ok {
			c.Lineups[i].Positions = append(c.Lineups[i].Positions, *p)
		}
	}

	return rows.Err()
}

func (r *choreoRepository) getParticipations(ctx context.Context, choreoID int) ([]domain.Participation, error) {
	query := `
		SELECT choreo_id, member_id, color
		FROM participations
		WHERE choreo_id = $1
		ORDER BY created_at, member_id
	`

	rows, err := r.db.QueryContext(ctx, query, choreoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participations := make([]domain.Participation, 0)
	for rows.Next() {
		var p domain.Participation
		if err := rows.Scan(&p.ChoreoID, &p.MemberID, &p.Color); err != nil {
			return nil, err
		}
		participations = append(participations, p)
	}

	return participations, rows.Err()
}
