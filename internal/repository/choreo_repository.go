package repository

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type ChoreoRepository interface {
	Create(ctx context.Context, choreo *domain.Choreo) error
	// GetByID загружает хореографию с построениями, позициями и участниками;
	// построения в порядке создания
	GetByID(ctx context.Context, id int) (*domain.Choreo, error)
}
