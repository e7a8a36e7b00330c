package tui

import (
	"sync"

	"github.com/studiowebux/birthdaycard/internal/card"
)

// NameState holds the saved recipient name. It always reflects the last
// successfully saved value; rejected drafts never land here.
type NameState struct {
	mu   sync.RWMutex
	name string
}

// NewNameState creates name state seeded from the persisted value.
// A blank or invalid stored value falls back to the default name.
func NewNameState(stored string) *NameState {
	v, trimmed := card.ValidateName(stored)
	if v != card.Valid {
		trimmed = card.DefaultName
	}
	return &NameState{name: trimmed}
}

// Name returns the current recipient name.
func (s *NameState) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// SetName sets the recipient name. The caller is responsible for
// validating and trimming first.
func (s *NameState) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}
