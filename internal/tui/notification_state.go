package tui

import "sync"

type bannerKind int

const (
	bannerSuccess bannerKind = iota
	bannerError
)

// Banner is one auto-dismissing notification. Banners stack newest-last;
// there is no deduplication and no queue. Each banner's lifetime is
// driven by its own fire-once timers keyed by ID.
type Banner struct {
	ID      int
	Kind    bannerKind
	Message string
	Exiting bool
}

// NotificationState owns the banner stack.
type NotificationState struct {
	mu      sync.RWMutex
	nextID  int
	banners []Banner
}

// NewNotificationState creates an empty banner stack.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add appends a banner and returns its id for the dismissal timers.
func (s *NotificationState) Add(kind bannerKind, message string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.banners = append(s.banners, Banner{
		ID:      s.nextID,
		Kind:    kind,
		Message: message,
	})
	return s.nextID
}

// MarkExiting flips a banner into its exit transition. Returns false when
// the banner was already removed.
func (s *NotificationState) MarkExiting(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.banners {
		if s.banners[i].ID == id {
			s.banners[i].Exiting = true
			return true
		}
	}
	return false
}

// Remove drops a banner. Removing an unknown id is a no-op.
func (s *NotificationState) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.banners {
		if s.banners[i].ID == id {
			s.banners = append(s.banners[:i], s.banners[i+1:]...)
			return
		}
	}
}

// Banners returns a copy of the current stack for rendering.
func (s *NotificationState) Banners() []Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Banner, len(s.banners))
	copy(out, s.banners)
	return out
}

// Count returns the number of active banners.
func (s *NotificationState) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.banners)
}
