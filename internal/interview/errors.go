package interview

import "errors"

// Session control-flow errors surfaced to callers.
var (
	ErrNoActiveSession  = errors.New("no active interview session")
	ErrEmptyMessage     = errors.New("message required")
	ErrAlreadyCompleted = errors.New("interview already completed")
	ErrNoQuestions      = errors.New("no questions available")
)

// GenerateError indicates that AI question generation failed or produced
// unusable output.
type GenerateError struct {
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}
