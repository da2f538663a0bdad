package repository

import "errors"

var (
	ErrTeamNotFound          = errors.New("team not found")
	ErrMemberNotFound        = errors.New("member not found")
	ErrChoreoNotFound        = errors.New("choreo not found")
	ErrLineupNotFound        = errors.New("lineup not found")
	ErrPositionNotFound      = errors.New("position not found")
	ErrParticipationNotFound = errors.New("participation not found")

	ErrTeamNameTaken        = errors.New("team name already taken")
	ErrParticipationExists  = errors.New("participation already exists")
	ErrReferencedRowMissing = errors.New("referenced row does not exist")
)
