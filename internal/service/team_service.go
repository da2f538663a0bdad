package service

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	GetTeam(ctx context.Context, id int) (*domain.Team, error)
}
