// Package navigation holds the injected navigation capability and the
// route table mapping paths to views. Nothing here touches a real browser
// history, which keeps the routing state machine testable.
package navigation

import "sync"

// History is the navigation capability handed to the shell. Push appends an
// entry; Replace swaps the current one and is reserved for the root redirect
// so back-navigation entries survive every other transition.
type History interface {
	CurrentPath() string
	Push(path string)
	Replace(path string)
	OnChange(listener func(path string))
}

// MemoryHistory is an in-memory History with back/forward semantics.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	index     int
	listeners []func(string)
}

// NewMemoryHistory starts a history at the given path.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{entries: []string{initial}}
}

func (h *MemoryHistory) CurrentPath() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	if path == h.entries[h.index] {
		h.mu.Unlock()
		return
	}
	h.entries = append(h.entries[:h.index+1], path)
	h.index = len(h.entries) - 1
	listeners := append([]func(string){}, h.listeners...)
	h.mu.Unlock()

	for _, listener := range listeners {
		listener(path)
	}
}

func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	if path == h.entries[h.index] {
		h.mu.Unlock()
		return
	}
	h.entries[h.index] = path
	listeners := append([]func(string){}, h.listeners...)
	h.mu.Unlock()

	for _, listener := range listeners {
		listener(path)
	}
}

// Back moves one entry backwards and reports whether it could.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	if h.index == 0 {
		h.mu.Unlock()
		return false
	}
	h.index--
	path := h.entries[h.index]
	listeners := append([]func(string){}, h.listeners...)
	h.mu.Unlock()

	for _, listener := range listeners {
		listener(path)
	}
	return true
}

func (h *MemoryHistory) OnChange(listener func(path string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, listener)
}

// Entries returns a copy of the history stack up to the current entry.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries[:h.index+1]...)
}
