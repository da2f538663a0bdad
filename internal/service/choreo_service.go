package service

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
)

type ChoreoService interface {
	CreateChoreo(ctx context.Context, choreo *domain.Choreo) (*domain.Choreo, error)
	GetChoreo(ctx context.Context, id int) (*domain.Choreo, error)
	// PositionsAt - позиции всех участников хореографии на счёте count
	PositionsAt(ctx context.Context, choreoID, count int) ([]timeline.Placement, error)
	// Frames - позиции на каждом счёте from..to
	Frames(ctx context.Context, choreoID, from, to int) ([][]timeline.Placement, error)
	CountSheet(ctx context.Context, choreoID int) ([]timeline.GridRow, error)
}
