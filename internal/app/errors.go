package app

import (
	"errors"
	"strings"
)

var (
	ErrInvalid         = errors.New("app: validation failed")
	ErrNotFound        = errors.New("app: not found")
	ErrNotInYard       = errors.New("app: container is not in the yard")
	ErrAlreadyInYard   = errors.New("app: container is already in the yard")
	ErrSlotOccupied    = errors.New("app: slot is occupied")
	ErrUnknownSlot     = errors.New("app: slot does not exist")
	ErrYardFull        = errors.New("app: no free slot for this load type")
	ErrConfirmRequired = errors.New("app: change affects containers in the yard, confirmation required")
	ErrUnauthorized    = errors.New("app: not logged in")
)

// ValidationError перечисляет незаполненные или неверные поля формы.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "app: invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

func invalid(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
