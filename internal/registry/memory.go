// Package registry holds the in-memory activity store for the process lifetime.
package registry

import (
	"context"
	"slices"
	"sync"

	"example.com/activities/internal/domain"
)

// InMemoryRegistry stores activities in memory, seeded once at startup.
// Rosters reset on restart.
type InMemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryRegistry constructs a registry populated with the school catalog.
func NewInMemoryRegistry() *InMemoryRegistry {
	r := &InMemoryRegistry{activities: make(map[string]domain.Activity)}
	r.seed()
	return r
}

func (r *InMemoryRegistry) seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities["Chess Club"] = domain.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}
	r.activities["Programming Class"] = domain.Activity{
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	}
	r.activities["Gym Class"] = domain.Activity{
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	}
	r.activities["Basketball"] = domain.Activity{
		Description:     "Practice basketball drills and play friendly matches",
		Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
	}
	r.activities["Soccer Club"] = domain.Activity{
		Description:     "Join the school soccer team and compete in local leagues",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 22,
		Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
	}
	r.activities["Art Club"] = domain.Activity{
		Description:     "Explore painting, drawing, and other visual arts",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
	}
	r.activities["Drama Club"] = domain.Activity{
		Description:     "Act, direct, and produce school plays and performances",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
	}
	r.activities["Debate Team"] = domain.Activity{
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 12,
		Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
	}
	r.activities["Science Club"] = domain.Activity{
		Description:     "Hands-on experiments and science fair preparation",
		Schedule:        "Saturdays, 10:00 AM - 11:30 AM",
		MaxParticipants: 18,
		Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
	}
}

// ListAll returns a defensive copy of every activity and its roster.
func (r *InMemoryRegistry) ListAll(ctx context.Context) map[string]domain.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = slices.Clone(activity.Participants)
		out[name] = activity
	}
	return out
}

// Exists reports whether the named activity is in the registry.
func (r *InMemoryRegistry) Exists(ctx context.Context, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.activities[name]
	return ok
}

// AddParticipant appends the email to the activity roster. Validation runs
// before any mutation so a failed call never changes state.
func (r *InMemoryRegistry) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return domain.ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// RemoveParticipant removes exactly the given email, leaving the relative
// order of the remaining roster unchanged.
func (r *InMemoryRegistry) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	activity.Participants = slices.Delete(slices.Clone(activity.Participants), idx, idx+1)
	r.activities[name] = activity
	return nil
}
