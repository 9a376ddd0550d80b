package booking

import (
	"errors"
	"fmt"
)

// Error codes for the booking pipeline. Callers branch on the code to keep
// user-visible messages distinct per failure class: a scheduling conflict is
// not the same problem as an onboarding gap on the trainer side.
const (
	CodeValidation          = "validationError"
	CodeNoAvailability      = "noAvailability"
	CodeNoAuthorizedTrainer = "noAuthorizedTrainer"
	CodeCalendarMutation    = "calendarMutation"
)

// BookingError is a typed pipeline failure.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewNoAvailabilityError(msg string) error {
	return &BookingError{Code: CodeNoAvailability, Message: msg}
}

func NewNoAuthorizedTrainerError(msg string) error {
	return &BookingError{Code: CodeNoAuthorizedTrainer, Message: msg}
}

func NewCalendarMutationError(msg string) error {
	return &BookingError{Code: CodeCalendarMutation, Message: msg}
}

// ErrorCode extracts the booking error code, or "" for untyped errors.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
