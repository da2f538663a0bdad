package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/bagdasarian/choreo-timeline/internal/repository/postgres"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
)

const (
	writeAccepted  = "accepted"
	writeUnchanged = "unchanged"
	writeRejected  = "rejected"
)

type positionService struct {
	db      *sql.DB
	guard   *timeline.OrderingGuard
	metrics *metrics.Metrics
	logger  logging.Logger
}

func NewPositionService(db *sql.DB, guard *timeline.OrderingGuard, m *metrics.Metrics, logger logging.Logger) PositionService {
	return &positionService{
		db:      db,
		guard:   guard,
		metrics: m,
		logger:  logger,
	}
}

// UpdatePosition читает строку под FOR UPDATE, проверяет порядок и пишет в той же транзакции
func (s *positionService) UpdatePosition(ctx context.Context, positionID int, update domain.PositionUpdate) (*domain.Position, error) {
	if err := domain.ValidatePositionUpdate(update); err != nil {
		s.metrics.RecordValidationFailure("position")
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	positions := postgres.NewPositionRepositoryWithTx(tx)

	pos, err := positions.GetByIDForUpdate(ctx, positionID)
	if err != nil {
		return nil, translate(err, positionID)
	}

	verdict, err := s.guard.Check(pos, update)
	if err != nil {
		s.metrics.RecordPositionWrite(writeRejected)
		s.logger.Warn("stale position update rejected",
			logging.Int("position_id", positionID),
			logging.String("reason", err.Error()),
		)
		return nil, err
	}

	if verdict.Decision == timeline.DecisionUnchanged {
		s.metrics.RecordPositionWrite(writeUnchanged)
		return pos, nil
	}

	timeline.Apply(pos, update, verdict)

	if err := positions.Update(ctx, pos); err != nil {
		s.logger.Error("failed to update position", err, logging.Int("position_id", positionID))
		return nil, translate(err, positionID)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit position update", err, logging.Int("position_id", positionID))
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.metrics.RecordPositionWrite(writeAccepted)
	s.logger.Debug("position updated",
		logging.Int("position_id", positionID),
		logging.Float64("x", pos.X),
		logging.Float64("y", pos.Y),
		logging.Time("stamp", verdict.Stamp),
	)

	return pos, nil
}
