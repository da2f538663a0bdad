package service

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type LineupService interface {
	CreateLineup(ctx context.Context, choreoID int, lineup *domain.Lineup) (*domain.Lineup, error)
	DeleteLineup(ctx context.Context, id int) error
}
