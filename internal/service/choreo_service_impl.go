package service

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
)

type choreoService struct {
	choreoRepo   repository.ChoreoRepository
	memberRepo   repository.MemberRepository
	interpolator *timeline.Interpolator
	grid         *timeline.CountGrid
	maxFrames    int
	metrics      *metrics.Metrics
	logger       logging.Logger
}

func NewChoreoService(
	choreoRepo repository.ChoreoRepository,
	memberRepo repository.MemberRepository,
	interpolator *timeline.Interpolator,
	grid *timeline.CountGrid,
	maxFrames int,
	m *metrics.Metrics,
	logger logging.Logger,
) ChoreoService {
	return &choreoService{
		choreoRepo:   choreoRepo,
		memberRepo:   memberRepo,
		interpolator: interpolator,
		grid:         grid,
		maxFrames:    maxFrames,
		metrics:      m,
		logger:       logger,
	}
}

func (s *choreoService) CreateChoreo(ctx context.Context, choreo *domain.Choreo) (*domain.Choreo, error) {
	if err := domain.ValidateChoreo(choreo); err != nil {
		s.metrics.RecordValidationFailure("choreo")
		return nil, err
	}

	if err := s.choreoRepo.Create(ctx, choreo); err != nil {
		return nil, translate(err, choreo.TeamID)
	}
	choreo.Lineups = []domain.Lineup{}
	choreo.Participations = []domain.Participation{}

	s.logger.Info("choreo created",
		logging.Int("choreo_id", choreo.ID),
		logging.Int("team_id", choreo.TeamID),
		logging.Int("counts", choreo.Counts),
	)

	return choreo, nil
}

func (s *choreoService) GetChoreo(ctx context.Context, id int) (*domain.Choreo, error) {
	choreo, err := s.choreoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}
	return choreo, nil
}

func (s *choreoService) PositionsAt(ctx context.Context, choreoID, count int) ([]timeline.Placement, error) {
	choreo, roster, err := s.load(ctx, choreoID)
	if err != nil {
		return nil, err
	}

	placements := s.interpolator.PositionsFor(choreo, count, choreo.MemberIDs(), roster)
	s.metrics.RecordPlacements(len(placements))

	return placements, nil
}

// Frames ограничивает диапазон длиной хореографии; окно длиннее maxFrames отклоняется
func (s *choreoService) Frames(ctx context.Context, choreoID, from, to int) ([][]timeline.Placement, error) {
	if from < 0 {
		return nil, domain.NewValidationError("from must not be negative, got %d", from)
	}
	if from > to {
		return nil, domain.NewValidationError("from %d is greater than to %d", from, to)
	}

	choreo, roster, err := s.load(ctx, choreoID)
	if err != nil {
		return nil, err
	}
	if from >= choreo.Counts {
		return nil, domain.NewValidationError("from %d is outside the choreo length %d", from, choreo.Counts)
	}
	to = min(to, choreo.Counts-1)
	if window := to - from + 1; window > s.maxFrames {
		s.metrics.RecordValidationFailure("frames")
		return nil, domain.NewValidationError("frame window %d exceeds the limit of %d counts", window, s.maxFrames)
	}

	frames := s.interpolator.Frames(choreo, from, to, choreo.MemberIDs(), roster)

	total := 0
	for _, f := range frames {
		total += len(f)
	}
	s.metrics.RecordPlacements(total)

	return frames, nil
}

func (s *choreoService) CountSheet(ctx context.Context, choreoID int) ([]timeline.GridRow, error) {
	choreo, err := s.choreoRepo.GetByID(ctx, choreoID)
	if err != nil {
		return nil, translate(err, choreoID)
	}
	return s.grid.Sheet(choreo.Counts), nil
}

// load возвращает хореографию и состав ее команды
func (s *choreoService) load(ctx context.Context, choreoID int) (*domain.Choreo, []domain.Member, error) {
	choreo, err := s.choreoRepo.GetByID(ctx, choreoID)
	if err != nil {
		return nil, nil, translate(err, choreoID)
	}

	roster, err := s.memberRepo.GetByTeamID(ctx, choreo.TeamID)
	if err != nil {
		s.logger.Error("failed to load roster", err, logging.Int("team_id", choreo.TeamID))
		return nil, nil, err
	}

	return choreo, roster, nil
}
