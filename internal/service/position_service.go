package service

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type PositionService interface {
	// UpdatePosition применяет ручное изменение позиции, если оно не устарело
	UpdatePosition(ctx context.Context, positionID int, update domain.PositionUpdate) (*domain.Position, error)
}
