package service

import (
	"context"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
)

type ParticipationService interface {
	// AddParticipant добавляет участника команды в хореографию; пустой color выбирается из палитры
	AddParticipant(ctx context.Context, choreoID, memberID int, color string) (*domain.Participation, error)
	// RemoveParticipant удаляет участие и все позиции участника в хореографии
	RemoveParticipant(ctx context.Context, choreoID, memberID int) error
}
