package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func TestSeedCatalogComplete(t *testing.T) {
	reg := NewInMemoryRegistry()
	all := reg.ListAll(context.Background())

	require.NotEmpty(t, all)
	require.Contains(t, all, "Chess Club")

	for name, activity := range all {
		require.NotEmpty(t, activity.Description, "activity %q", name)
		require.NotEmpty(t, activity.Schedule, "activity %q", name)
		require.Positive(t, activity.MaxParticipants, "activity %q", name)
		require.NotNil(t, activity.Participants, "activity %q", name)
	}
}

func TestAddParticipantAppendsInOrder(t *testing.T) {
	reg := NewInMemoryRegistry()
	ctx := context.Background()

	before := reg.ListAll(ctx)["Chess Club"].Participants

	require.NoError(t, reg.AddParticipant(ctx, "Chess Club", "new@x.edu"))

	after := reg.ListAll(ctx)["Chess Club"].Participants
	require.Len(t, after, len(before)+1)
	require.Equal(t, before, after[:len(before)])
	require.Equal(t, "new@x.edu", after[len(after)-1])
}

func TestAddParticipantDuplicate(t *testing.T) {
	reg := NewInMemoryRegistry()
	ctx := context.Background()

	require.NoError(t, reg.AddParticipant(ctx, "Soccer Club", "dup@x.edu"))
	err := reg.AddParticipant(ctx, "Soccer Club", "dup@x.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	roster := reg.ListAll(ctx)["Soccer Club"].Participants
	require.Equal(t, 1, countOf(roster, "dup@x.edu"))
}

func TestAddParticipantUnknownActivity(t *testing.T) {
	reg := NewInMemoryRegistry()
	err := reg.AddParticipant(context.Background(), "Nonexistent Club", "test@x.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestRemoveParticipantUnknownActivity(t *testing.T) {
	reg := NewInMemoryRegistry()
	err := reg.RemoveParticipant(context.Background(), "Fake Club", "test@x.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestRemoveParticipantNotRegistered(t *testing.T) {
	reg := NewInMemoryRegistry()
	before := reg.ListAll(context.Background())["Chess Club"].Participants

	err := reg.RemoveParticipant(context.Background(), "Chess Club", "notexist@x.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)

	after := reg.ListAll(context.Background())["Chess Club"].Participants
	require.Equal(t, before, after)
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	reg := NewInMemoryRegistry()
	ctx := context.Background()

	before := reg.ListAll(ctx)["Debate Team"].Participants

	require.NoError(t, reg.AddParticipant(ctx, "Debate Team", "roundtrip@x.edu"))
	require.NoError(t, reg.RemoveParticipant(ctx, "Debate Team", "roundtrip@x.edu"))

	after := reg.ListAll(ctx)["Debate Team"].Participants
	require.Equal(t, before, after)
}

func TestRemoveParticipantKeepsOrder(t *testing.T) {
	reg := NewInMemoryRegistry()
	ctx := context.Background()

	require.NoError(t, reg.AddParticipant(ctx, "Science Club", "middle@x.edu"))
	require.NoError(t, reg.AddParticipant(ctx, "Science Club", "last@x.edu"))

	require.NoError(t, reg.RemoveParticipant(ctx, "Science Club", "middle@x.edu"))

	roster := reg.ListAll(ctx)["Science Club"].Participants
	require.NotContains(t, roster, "middle@x.edu")
	require.Equal(t, "last@x.edu", roster[len(roster)-1])
	require.Equal(t, []string{"charlotte@mergington.edu", "henry@mergington.edu"}, roster[:2])
}

func TestExists(t *testing.T) {
	reg := NewInMemoryRegistry()
	require.True(t, reg.Exists(context.Background(), "Chess Club"))
	require.False(t, reg.Exists(context.Background(), "chess club"))
	require.False(t, reg.Exists(context.Background(), "Nonexistent Club"))
}

func TestListAllReturnsDefensiveCopy(t *testing.T) {
	reg := NewInMemoryRegistry()
	ctx := context.Background()

	view := reg.ListAll(ctx)
	view["Chess Club"].Participants[0] = "tampered@x.edu"
	delete(view, "Gym Class")

	fresh := reg.ListAll(ctx)
	require.Equal(t, "michael@mergington.edu", fresh["Chess Club"].Participants[0])
	require.Contains(t, fresh, "Gym Class")
}

func TestConcurrentSignupsLoseNoUpdate(t *testing.T) {
	reg := NewInMemoryRegistry()
	ctx := context.Background()

	const workers = 32
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i)
			errs <- reg.AddParticipant(ctx, "Gym Class", email)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	roster := reg.ListAll(ctx)["Gym Class"].Participants
	require.Len(t, roster, 2+workers)
	for i := 0; i < workers; i++ {
		require.Contains(t, roster, fmt.Sprintf("student%d@mergington.edu", i))
	}
}

func countOf(list []string, target string) int {
	n := 0
	for _, item := range list {
		if item == target {
			n++
		}
	}
	return n
}
