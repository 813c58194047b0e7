package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error taxonomy shared by every service. Services wrap these with context
// via fmt.Errorf("...: %w", ErrX) and handlers map them with RespondError.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidSlot       = errors.New("invalid slot")
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrPremiumRequired   = errors.New("premium subscription required")
)

type errorClass struct {
	sentinel error
	status   int
	code     string
}

// Order matters only for errors that wrap more than one sentinel.
var errorClasses = []errorClass{
	{ErrSlotAlreadyBooked, http.StatusConflict, "SLOT_ALREADY_BOOKED"},
	{ErrInvalidSlot, http.StatusUnprocessableEntity, "INVALID_SLOT"},
	{ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
	{ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{ErrConflict, http.StatusConflict, "CONFLICT"},
	{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{ErrPremiumRequired, http.StatusPaymentRequired, "PREMIUM_REQUIRED"},
}

// Classify returns the HTTP status and stable error code for err.
// Unknown errors classify as 500 INTERNAL.
func Classify(err error) (int, string) {
	for _, ec := range errorClasses {
		if errors.Is(err, ec.sentinel) {
			return ec.status, ec.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL"
}

// Validationf builds a validation error with a formatted detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
