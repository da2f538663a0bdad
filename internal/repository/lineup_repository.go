package repository

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type LineupRepository interface {
	Create(ctx context.Context, lineup *domain.Lineup) error
	Delete(ctx context.Context, id int) error
}
