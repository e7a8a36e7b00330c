package tui

import "sync"

// announcement is one transient live-region entry.
type announcement struct {
	id   int
	text string
}

// AnnouncerState mirrors user-visible state changes into a polite live
// region rendered below the status bar. Every entry is independent and
// expires on its own timer; rapid announcements coexist. Fire-and-forget:
// no return value reaches the caller beyond the expiry id.
type AnnouncerState struct {
	mu      sync.RWMutex
	nextID  int
	entries []announcement
}

// NewAnnouncerState creates an empty live region.
func NewAnnouncerState() *AnnouncerState {
	return &AnnouncerState{}
}

// Add appends an announcement and returns its id for the expiry timer.
func (s *AnnouncerState) Add(text string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.entries = append(s.entries, announcement{id: s.nextID, text: text})
	return s.nextID
}

// Expire removes one announcement. Unknown ids are ignored.
func (s *AnnouncerState) Expire(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Messages returns the live entries for rendering, oldest first.
func (s *AnnouncerState) Messages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.text
	}
	return out
}

// Count returns the number of live entries.
func (s *AnnouncerState) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
