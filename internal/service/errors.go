package service

import "errors"

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyCompleted   = errors.New("You have already completed this assessment. Multiple attempts are not allowed.")
	ErrInvalidRole        = errors.New("unrecognized role in login response")
	ErrNoToken            = errors.New("no token received from server")
)

// ValidationError marks input problems the caller can fix. Controllers map
// it to a 400 without touching the upstream backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(message string) error {
	return &ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
