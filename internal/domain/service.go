package domain

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"example.com/activities/internal/events"
	"example.com/activities/internal/observability"
)

// Registry captures the roster store operations.
type Registry interface {
	ListAll(ctx context.Context) map[string]Activity
	Exists(ctx context.Context, name string) bool
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// Service orchestrates roster workflows on top of the registry.
type Service struct {
	registry Registry
	events   events.Publisher
}

// NewService constructs a Service.
func NewService(registry Registry, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{registry: registry, events: publisher}
}

// ListActivities returns every activity with its current roster.
func (s *Service) ListActivities(ctx context.Context) map[string]Activity {
	return s.registry.ListAll(ctx)
}

// SignUp appends the email to the activity roster. The event feed is best
// effort; publish failures never fail the signup itself.
func (s *Service) SignUp(ctx context.Context, activity, email string) error {
	if err := s.registry.AddParticipant(ctx, activity, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}

	observability.RecordSignup(activity)

	ev := events.ParticipantSignedUp{
		EventID:    uuid.NewString(),
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.PublishSignedUp(ctx, ev); err != nil {
		log.Printf("failed to publish signup event for %q: %v", activity, err)
	}
	return nil
}

// Unregister removes the email from the activity roster.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if err := s.registry.RemoveParticipant(ctx, activity, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}

	observability.RecordUnregistration(activity)

	ev := events.ParticipantUnregistered{
		EventID:    uuid.NewString(),
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.PublishUnregistered(ctx, ev); err != nil {
		log.Printf("failed to publish unregister event for %q: %v", activity, err)
	}
	return nil
}

func rejectionReason(err error) string {
	switch err {
	case ErrActivityNotFound:
		return "activity_not_found"
	case ErrAlreadyRegistered:
		return "already_signed_up"
	case ErrNotRegistered:
		return "not_signed_up"
	default:
		return "other"
	}
}
