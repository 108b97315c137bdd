package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofeed/models"
)

func TestAddAndRemoveNotification(t *testing.T) {
	s := NewState(nil)

	n := s.AddNotification("saved", models.NotificationSuccess, false)
	require.Len(t, s.Notifications(), 1)
	assert.Equal(t, "saved", s.Notifications()[0].Message)
	assert.Equal(t, models.NotificationSuccess, s.Notifications()[0].Type)

	s.RemoveNotification(n.ID)
	assert.Empty(t, s.Notifications())

	// Idempotent: a second removal is a no-op.
	s.RemoveNotification(n.ID)
	assert.Empty(t, s.Notifications())
}

func TestAutoHideRemovesAfterDelay(t *testing.T) {
	s := NewState(nil)
	s.autoHideDelay = 20 * time.Millisecond

	s.AddNotification("fleeting", models.NotificationInfo, true)
	require.Len(t, s.Notifications(), 1)

	assert.Eventually(t, func() bool {
		return len(s.Notifications()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestManualRemovalCancelsAutoHide(t *testing.T) {
	s := NewState(nil)
	s.autoHideDelay = 20 * time.Millisecond

	n := s.AddNotification("fleeting", models.NotificationInfo, true)
	s.RemoveNotification(n.ID)
	assert.Empty(t, s.Notifications())

	// Add a sibling and let the original timer window pass: only a timer
	// firing for the removed id could touch it, and that was cancelled.
	keep := s.AddNotification("keep", models.NotificationInfo, false)
	time.Sleep(50 * time.Millisecond)

	notes := s.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, keep.ID, notes[0].ID)
}

func TestNotificationsReturnsCopy(t *testing.T) {
	s := NewState(nil)
	s.AddNotification("one", models.NotificationInfo, false)

	notes := s.Notifications()
	notes[0].Message = "mutated"
	assert.Equal(t, "one", s.Notifications()[0].Message)
}
