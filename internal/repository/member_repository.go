package repository

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type MemberRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	GetByTeamID(ctx context.Context, teamID int) ([]domain.Member, error)
}
