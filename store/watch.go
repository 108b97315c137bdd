package store

import "sync"

// Event describes a completed store mutation. Subscribers use it to decide
// what to re-render; it is not part of the persisted state.
type Event struct {
	Entity string // "user", "post", "comment", "session"
	Action string // "create", "update", "delete", "like", "unlike", "login", "logout"
	ID     string
}

// watcher fans mutation events out to registered callbacks.
type watcher struct {
	mu   sync.RWMutex
	subs map[int]func(Event)
	next int
}

func newWatcher() *watcher {
	return &watcher{subs: make(map[int]func(Event))}
}

// Subscribe registers fn to receive every mutation event. The returned
// function removes the subscription. Callbacks run synchronously after the
// store lock is released, so they may call back into the store.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.watcher.mu.Lock()
	id := s.watcher.next
	s.watcher.next++
	s.watcher.subs[id] = fn
	s.watcher.mu.Unlock()

	return func() {
		s.watcher.mu.Lock()
		delete(s.watcher.subs, id)
		s.watcher.mu.Unlock()
	}
}

func (s *Store) notify(ev Event) {
	s.watcher.mu.RLock()
	subs := make([]func(Event), 0, len(s.watcher.subs))
	for _, fn := range s.watcher.subs {
		subs = append(subs, fn)
	}
	s.watcher.mu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}
