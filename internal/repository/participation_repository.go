package repository

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type ParticipationRepository interface {
	Create(ctx context.Context, p *domain.Participation) error
	Delete(ctx context.Context, choreoID, memberID int) error
	ColorsInUse(ctx context.Context, choreoID int) ([]string, error)
}
