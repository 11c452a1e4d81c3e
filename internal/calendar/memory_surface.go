package calendar

import (
	"sync"
	"time"
)

// MemorySurface is an in-memory Surface used by the operator console and by
// tests. It records what a real widget would display.
type MemorySurface struct {
	mu         sync.Mutex
	events     []Event
	handler    func(string)
	scrolledTo time.Time
	destroyed  bool
	renders    int
}

// NewMemorySurface returns an empty surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{}
}

func (s *MemorySurface) Render(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]Event(nil), events...)
	s.renders++
}

func (s *MemorySurface) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
	s.events = nil
	s.handler = nil
}

func (s *MemorySurface) OnEventClick(handler func(reservationID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

func (s *MemorySurface) ScrollTo(instant time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrolledTo = instant
}

// Click simulates the user clicking the event with the given id.
func (s *MemorySurface) Click(reservationID string) {
	s.mu.Lock()
	handler := s.handler
	s.mu.Unlock()
	if handler != nil {
		handler(reservationID)
	}
}

// Events returns a copy of the rendered events.
func (s *MemorySurface) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// Destroyed reports whether Destroy was called on this instance.
func (s *MemorySurface) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// ScrolledTo returns the last instant passed to ScrollTo.
func (s *MemorySurface) ScrolledTo() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrolledTo
}

// Renders returns how many times Render was called.
func (s *MemorySurface) Renders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}
