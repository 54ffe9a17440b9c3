// Package platform fetches and normalizes external coding-platform signals
// for student profiles.
package platform

import "fmt"

// Error represents a failure while fetching one platform's stats.
type Error struct {
	Platform string
	Username string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s fetch failed for %s: %s: %v", e.Platform, e.Username, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s fetch failed for %s: %s", e.Platform, e.Username, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
