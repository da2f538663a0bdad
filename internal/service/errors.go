package service

import (
	"errors"
	"fmt"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/repository"
)

// translate переводит ошибки хранилища в доменные; остальные возвращает как есть
func translate(err error, id int) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrTeamNotFound):
		return domain.NewNotFoundError(fmt.Sprintf("team %d", id))
	case errors.Is(err, repository.ErrMemberNotFound):
		return domain.NewNotFoundError(fmt.Sprintf("member %d", id))
	case errors.Is(err, repository.ErrChoreoNotFound):
		return domain.NewNotFoundError(fmt.Sprintf("choreo %d", id))
	case errors.Is(err, repository.ErrLineupNotFound):
		return domain.NewNotFoundError(fmt.Sprintf("lineup %d", id))
	case errors.Is(err, repository.ErrPositionNotFound):
		return domain.NewNotFoundError(fmt.Sprintf("position %d", id))
	case errors.Is(err, repository.ErrParticipationNotFound):
		return domain.NewNotFoundError(fmt.Sprintf("participation of member %d", id))
	case errors.Is(err, repository.ErrTeamNameTaken):
		return domain.ErrTeamExists
	case errors.Is(err, repository.ErrParticipationExists):
		return domain.ErrParticipantExists
	}
	return err
}
