// Package events defines the roster event feed payloads and publisher.
package events

import "time"

// ParticipantSignedUp is emitted when an email joins an activity roster.
type ParticipantSignedUp struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ParticipantUnregistered is emitted when an email leaves an activity roster.
type ParticipantUnregistered struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
