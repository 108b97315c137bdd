package app

import (
	"time"

	"go.uber.org/zap"

	"echofeed/models"
)

// AddNotification appends a notification to the queue. With autoHide set, a
// timer removes it after the auto-hide delay; explicit removal cancels the
// timer, and a timer firing after manual removal is a harmless no-op.
func (s *State) AddNotification(message string, typ models.NotificationType, autoHide bool) models.Notification {
	n := models.Notification{
		ID:       s.newID(),
		Message:  message,
		Type:     typ,
		AutoHide: autoHide,
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	if autoHide {
		id := n.ID
		s.timers[id] = time.AfterFunc(s.autoHideDelay, func() {
			s.RemoveNotification(id)
		})
	}
	s.mu.Unlock()

	s.logger.Debug("notification added", zap.String("id", n.ID), zap.String("type", string(typ)))
	s.changed()
	return n
}

// RemoveNotification removes a notification and cancels its pending
// auto-hide timer. Idempotent: removing an absent id does nothing.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	idx := -1
	for i, n := range s.notifications {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return
	}
	s.notifications = append(s.notifications[:idx], s.notifications[idx+1:]...)
	s.mu.Unlock()
	s.changed()
}

// Notifications returns a copy of the current queue in arrival order.
func (s *State) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}
