package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the workflow gateway and repositories. The
// HTTP layer translates each into a status code; none of them leaves a
// request in a partially updated state.
var (
	// ErrNotFound indicates a referenced request or resource id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the actor's role does not permit acting on the
	// requested track.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition indicates the track is already terminal or does
	// not apply to the request's kind.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrResourceConflict indicates the resource is already booked by
	// another approved track over an overlapping window. The caller may
	// retry with a different assignment.
	ErrResourceConflict = errors.New("resource conflict")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates a signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError reports malformed creation or update input. The caller
// can correct the field and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
