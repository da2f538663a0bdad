package domain

import (
	"fmt"
	"time"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrTeamExists - команда уже существует
	ErrTeamExists = &DomainError{
		Code:    "TEAM_EXISTS",
		Message: "team name already exists",
	}

	// ErrParticipantExists - участник уже в хореографии
	ErrParticipantExists = &DomainError{
		Code:    "PARTICIPANT_EXISTS",
		Message: "member already participates in this choreo",
	}

	// ErrRequestOrder - запись устарела относительно сохраненной
	ErrRequestOrder = &DomainError{
		Code:    "REQUEST_ORDER",
		Message: "update is older than the stored position",
	}

	// ErrValidation - невалидные входные данные
	ErrValidation = &DomainError{
		Code:    "VALIDATION",
		Message: "validation failed",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION с описанием нарушения
func NewValidationError(format string, a ...any) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: fmt.Sprintf(format, a...),
	}
}

// RequestOrderError - отклоненная запись позиции, пришедшая не по порядку
type RequestOrderError struct {
	PositionID int
	Stored     time.Time
	Incoming   time.Time
}

func (e *RequestOrderError) Error() string {
	return fmt.Sprintf(
		"position %d: update from %s is not newer than stored %s",
		e.PositionID,
		e.Incoming.Format(time.RFC3339Nano),
		e.Stored.Format(time.RFC3339Nano),
	)
}

func (e *RequestOrderError) Unwrap() error {
	return ErrRequestOrder
}
