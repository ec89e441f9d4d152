package domain

import "errors"

// ValidationError means a required field was missing or empty at submission
// time. No partial write happens when one is returned.
type ValidationError struct {
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrNotReviewer is returned when a caller tries to transition or delete an
// application they do not own the review of.
var ErrNotReviewer = errors.New("caller is not the reviewer of this application")
