package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors controllers map onto HTTP statuses.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrAnnouncerDisabled = errors.New("announcer is not enabled")
)

// ValidationError carries field-level schema violations. Warnings ride
// along but never cause the error in the first place.
type ValidationError struct {
	Container string
	Errors    []string
	Warnings  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for '%s': %s", e.Container, strings.Join(e.Errors, "; "))
}

// IsConnectionError reports whether a store failure looks like a
// connectivity problem rather than a request problem, so the handler
// can answer 503 instead of 500.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{"connection refused", "no such host", "dial tcp", "i/o timeout", "connection reset"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
