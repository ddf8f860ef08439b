package utils

import "errors"

var (
	ErrSessionNotFound      = errors.New("assessment session not found")
	ErrAssessmentIncomplete = errors.New("assessment not completed")
	ErrInvalidAge           = errors.New("invalid age")
	ErrInvalidGender        = errors.New("invalid gender")
	ErrInvalidProfession    = errors.New("invalid profession")
	ErrSessionStore         = errors.New("session store error")
)

// ValidationError carries the user-facing message for a rejected response
// set. It is recoverable: the caller re-collects answers and retries.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
