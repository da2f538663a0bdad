package repository

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
}
