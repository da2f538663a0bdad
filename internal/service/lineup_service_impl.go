package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

type lineupService struct {
	choreoRepo repository.ChoreoRepository
	lineupRepo repository.LineupRepository
	metrics    *metrics.Metrics
	logger     logging.Logger
}

func NewLineupService(
	choreoRepo repository.ChoreoRepository,
	lineupRepo repository.LineupRepository,
	m *metrics.Metrics,
	logger logging.Logger,
) LineupService {
	return &lineupService{
		choreoRepo: choreoRepo,
		lineupRepo: lineupRepo,
		metrics:    m,
		logger:     logger,
	}
}

// CreateLineup добавляет построение; позиции можно задавать только участникам хореографии
func (s *lineupService) CreateLineup(ctx context.Context, choreoID int, lineup *domain.Lineup) (*domain.Lineup, error) {
	choreo, err := s.choreoRepo.GetByID(ctx, choreoID)
	if err != nil {
		return nil, translate(err, choreoID)
	}

	if err := domain.ValidateLineup(lineup, choreo.Counts); err != nil {
		s.metrics.RecordValidationFailure("lineup")
		return nil, err
	}

	participants := make(map[int]struct{}, len(choreo.Participations))
	for _, p := range choreo.Participations {
		participants[p.MemberID] = struct{}{}
	}
	for _, pos := range lineup.Positions {
		if _, ok := participants[pos.MemberID]; !ok {
			s.metrics.RecordValidationFailure("lineup")
			return nil, domain.NewValidationError("member %d does not participate in choreo %d", pos.MemberID, choreoID)
		}
	}

	lineup.ChoreoID = choreoID
	if lineup.Positions == nil {
		lineup.Positions = []domain.Position{}
	}

	if err := s.lineupRepo.Create(ctx, lineup); err != nil {
		if errors.Is(err, repository.ErrReferencedRowMissing) {
			return nil, domain.NewNotFoundError("member")
		}
		return nil, translate(err, choreoID)
	}

	s.logger.Info("lineup created",
		logging.Int("choreo_id", choreoID),
		logging.Int("lineup_id", lineup.ID),
		logging.Int("start_count", lineup.StartCount),
		logging.Int("end_count", lineup.EndCount),
	)

	return lineup, nil
}

// DeleteLineup удаляет построение вместе с позициями
func (s *lineupService) DeleteLineup(ctx context.Context, id int) error {
	if err := s.lineupRepo.Delete(ctx, id); err != nil {
		return translate(err, id)
	}
	s.logger.Info("lineup deleted", logging.Int("lineup_id", id))
	return nil
}
