package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
	metrics  *metrics.Metrics
	logger   logging.Logger
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository, m *metrics.Metrics, logger logging.Logger) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		metrics:  m,
		logger:   logger,
	}
}

// CreateTeam создает команду с участниками; имя команды уникально
func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	team.Name = strings.TrimSpace(team.Name)
	if err := domain.ValidateTeam(team); err != nil {
		s.metrics.RecordValidationFailure("team")
		return nil, err
	}

	existing, err := s.teamRepo.GetByName(ctx, team.Name)
	if err == nil && existing != nil {
		return nil, domain.ErrTeamExists
	}
	if err != nil && !errors.Is(err, repository.ErrTeamNotFound) {
		return nil, err
	}

	if team.Members == nil {
		team.Members = []domain.Member{}
	}

	// гонка двух одинаковых запросов ловится уникальным индексом
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, translate(err, team.ID)
	}

	s.logger.Info("team created",
		logging.Int("team_id", team.ID),
		logging.Int("members", len(team.Members)),
	)

	return team, nil
}

// GetTeam получает команду с участниками
func (s *teamService) GetTeam(ctx context.Context, id int) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}
	return team, nil
}
