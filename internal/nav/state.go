package nav

import "sync"

// State is the key/value store attached to a navigation entry. A later
// screen writes a result into the previous entry's state; the owning
// screen observes the slot and consumes the value exactly once.
//
// Observers are notified on every change, including clears, so a
// consumer can treat absence as "no result" without special casing.
// The mutex matters because Bubble Tea commands run on their own
// goroutines.
type State struct {
	mu        sync.Mutex
	values    map[string]string
	observers map[string][]*observer
}

type observer struct {
	fn func(value string, ok bool)
}

// NewState returns an empty store.
func NewState() *State {
	return &State{
		values:    make(map[string]string),
		observers: make(map[string][]*observer),
	}
}

// Set stores value under key and notifies observers of that key.
func (s *State) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	obs := append([]*observer(nil), s.observers[key]...)
	s.mu.Unlock()

	for _, o := range obs {
		o.fn(value, true)
	}
}

// Get reads the current value without consuming it.
func (s *State) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// ConsumeAndClear reads and removes the slot in one step. Remaining
// observers are told the slot is now absent, so a recreated consumer
// never sees a stale result.
func (s *State) ConsumeAndClear(key string) (string, bool) {
	s.mu.Lock()
	v, ok := s.values[key]
	var obs []*observer
	if ok {
		delete(s.values, key)
		obs = append([]*observer(nil), s.observers[key]...)
	}
	s.mu.Unlock()

	for _, o := range obs {
		o.fn("", false)
	}
	return v, ok
}

// Clear removes the slot without reading it, notifying observers.
func (s *State) Clear(key string) {
	s.ConsumeAndClear(key)
}

// Observe registers fn for changes to key and returns a cancel func.
// If a value is already present, fn fires immediately with it; a
// consumer that subscribes after the producer wrote still sees the
// result.
func (s *State) Observe(key string, fn func(value string, ok bool)) func() {
	o := &observer{fn: fn}
	s.mu.Lock()
	s.observers[key] = append(s.observers[key], o)
	v, ok := s.values[key]
	s.mu.Unlock()

	if ok {
		fn(v, true)
	}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.observers[key]
		for i, cand := range list {
			if cand == o {
				s.observers[key] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}
