package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrResourceUnavailable = errors.New("resource is not bookable")
	ErrAssignmentMismatch  = errors.New("resource is assigned to a different branch")
	ErrInvalidInterval     = errors.New("end time must be after start time")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrSlotConflict        = errors.New("slot conflict")
)

// SlotConflictError reports the reservation blocking a requested window.
// errors.Is(err, ErrSlotConflict) matches it.
type SlotConflictError struct {
	ResourceKind string
	ResourceID   uint
	ConflictID   uint
	StartTime    time.Time
	EndTime      time.Time
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf(
		"%s [%d] is already reserved from %s to %s",
		e.ResourceKind,
		e.ResourceID,
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339),
	)
}

func (e *SlotConflictError) Is(target error) bool {
	return target == ErrSlotConflict
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
