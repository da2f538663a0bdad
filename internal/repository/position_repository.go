package repository

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type PositionRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Position, error)
	// GetByIDForUpdate блокирует строку до конца транзакции
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Position, error)
	Update(ctx context.Context, pos *domain.Position) error
	DeleteByMemberInChoreo(ctx context.Context, choreoID, memberID int) (int64, error)
}
