package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
	"github.com/bagdasarian/choreo-timeline/internal/repository/postgres"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
)

type participationService struct {
	db                *sql.DB
	choreoRepo        repository.ChoreoRepository
	memberRepo        repository.MemberRepository
	participationRepo repository.ParticipationRepository
	colors            *timeline.ColorAssigner
	metrics           *metrics.Metrics
	logger            logging.Logger
}

func NewParticipationService(
	db *sql.DB,
	choreoRepo repository.ChoreoRepository,
	memberRepo repository.MemberRepository,
	participationRepo repository.ParticipationRepository,
	colors *timeline.ColorAssigner,
	m *metrics.Metrics,
	logger logging.Logger,
) ParticipationService {
	return &participationService{
		db:                db,
		choreoRepo:        choreoRepo,
		memberRepo:        memberRepo,
		participationRepo: participationRepo,
		colors:            colors,
		metrics:           m,
		logger:            logger,
	}
}

func (s *participationService) AddParticipant(ctx context.Context, choreoID, memberID int, color string) (*domain.Participation, error) {
	choreo, err := s.choreoRepo.GetByID(ctx, choreoID)
	if err != nil {
		return nil, translate(err, choreoID)
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, memberID)
	}
	if member.TeamID != choreo.TeamID {
		s.metrics.RecordValidationFailure("participation")
		return nil, domain.NewValidationError("member %d is not on team %d", memberID, choreo.TeamID)
	}

	if color == "" {
		inUse, err := s.participationRepo.ColorsInUse(ctx, choreoID)
		if err != nil {
			return nil, err
		}
		color = s.colors.Assign(inUse)
	} else if err := domain.ValidateColor(color); err != nil {
		s.metrics.RecordValidationFailure("participation")
		return nil, err
	}

	p := &domain.Participation{
		ChoreoID: choreoID,
		MemberID: memberID,
		Color:    color,
	}
	if err := s.participationRepo.Create(ctx, p); err != nil {
		return nil, translate(err, memberID)
	}

	s.logger.Info("participant added",
		logging.Int("choreo_id", choreoID),
		logging.Int("member_id", memberID),
		logging.String("color", color),
	)

	return p, nil
}

func (s *participationService) RemoveParticipant(ctx context.Context, choreoID, memberID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := postgres.NewParticipationRepositoryWithTx(tx).Delete(ctx, choreoID, memberID); err != nil {
		return translate(err, memberID)
	}

	removed, err := postgres.NewPositionRepositoryWithTx(tx).DeleteByMemberInChoreo(ctx, choreoID, memberID)
	if err != nil {
		s.logger.Error("failed to delete positions", err,
			logging.Int("choreo_id", choreoID),
			logging.Int("member_id", memberID),
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Info("participant removed",
		logging.Int("choreo_id", choreoID),
		logging.Int("member_id", memberID),
		logging.Int("positions_removed", int(removed)),
	)

	return nil
}
