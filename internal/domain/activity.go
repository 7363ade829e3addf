// Package domain defines the business logic for the school activities service.
package domain

import "errors"

// Activity represents one extracurricular offering. Activities are keyed by
// name in the registry; the name itself is not stored on the record.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

var (
	// ErrActivityNotFound indicates the named activity is not in the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the roster.
	ErrAlreadyRegistered = errors.New("already signed up for this activity")
	// ErrNotRegistered indicates the email is not on the roster.
	ErrNotRegistered = errors.New("not signed up for this activity")
)
