package state

import (
	"sync"

	"wine-explorer/models"
)

// FilterState owns the session's FilterSpec. It is only ever replaced
// whole; readers get a copy they may keep.
type FilterState struct {
	mu          sync.RWMutex
	spec        models.FilterSpec
	nextID      int
	subscribers map[int]func(models.FilterSpec)
}

// NewFilterState starts at models.DefaultFilterSpec.
func NewFilterState() *FilterState {
	return &FilterState{
		spec:        models.DefaultFilterSpec(),
		subscribers: make(map[int]func(models.FilterSpec)),
	}
}

func (s *FilterState) Get() models.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spec.Clone()
}

// Set validates and installs next, then notifies subscribers.
func (s *FilterState) Set(next models.FilterSpec) error {
	if err := next.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.spec = next.Clone()
	listeners := s.listeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next.Clone())
	}
	return nil
}

// Update derives the next spec from a copy of the current one and Sets it.
// The read and the write are not atomic with respect to other writers.
func (s *FilterState) Update(fn func(models.FilterSpec) models.FilterSpec) error {
	return s.Set(fn(s.Get()))
}

// Reset returns to the default spec.
func (s *FilterState) Reset() {
	// The default spec always validates.
	_ = s.Set(models.DefaultFilterSpec())
}

// Subscribe registers fn for every later change and returns a function that
// removes it.
func (s *FilterState) Subscribe(fn func(models.FilterSpec)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *FilterState) listeners() []func(models.FilterSpec) {
	out := make([]func(models.FilterSpec), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		out = append(out, fn)
	}
	return out
}
