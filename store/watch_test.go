package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesMutationEvents(t *testing.T) {
	s, _ := newTestStore(t)

	var events []Event
	cancel := s.Subscribe(func(ev Event) {
		events = append(events, ev)
	})
	defer cancel()

	u, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	require.Len(t, events, 2, "registration emits a user create and a session login")
	assert.Equal(t, Event{Entity: "user", Action: "create", ID: u.ID}, events[0])
	assert.Equal(t, Event{Entity: "session", Action: "login", ID: u.ID}, events[1])

	post, err := s.CreatePost(ctx(), "T", "C", "", u.ID)
	require.NoError(t, err)
	assert.Equal(t, Event{Entity: "post", Action: "create", ID: post.ID}, events[len(events)-1])
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	s, _ := newTestStore(t)

	count := 0
	cancel := s.Subscribe(func(Event) { count++ })

	_, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	seen := count
	require.Positive(t, seen)

	cancel()
	s.Logout(ctx())
	assert.Equal(t, seen, count, "no events after cancel")
}

func TestSubscriberMayReadStore(t *testing.T) {
	s, _ := newTestStore(t)

	var postsSeen int
	cancel := s.Subscribe(func(ev Event) {
		// Callbacks run outside the store lock, so reads are safe here.
		postsSeen = len(s.ListPosts())
	})
	defer cancel()

	u, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	_, err = s.CreatePost(ctx(), "T", "C", "", u.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, postsSeen)
}
