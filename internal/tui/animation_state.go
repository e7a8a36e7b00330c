package tui

import (
	"sync"

	"github.com/studiowebux/birthdaycard/internal/card"
)

// AnimationState owns the decorative flame and confetti plus the flag
// guarding replays against re-entrant triggering. The flag stays true for
// the full cooldown window regardless of what the animation looks like.
type AnimationState struct {
	mu        sync.RWMutex
	animating bool

	flame    *card.Flame
	confetti *card.Field
}

// NewAnimationState creates the animation primitives.
func NewAnimationState(seed int64) *AnimationState {
	return &AnimationState{
		flame:    card.NewFlame(seed),
		confetti: card.NewField(confettiCount, seed+1),
	}
}

// Animating reports whether a replay cooldown window is active.
func (s *AnimationState) Animating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.animating
}

// Start marks the cooldown active and restarts every primitive from its
// own beginning. The flame and each particle restart independently.
func (s *AnimationState) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animating = true
	s.flame.Restart()
	s.confetti.RestartAll()
}

// Stop clears the cooldown flag. Called only by the cooldown timer.
func (s *AnimationState) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animating = false
}

// Advance runs one frame of both primitives.
func (s *AnimationState) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flame.Advance()
	s.confetti.Advance()
}

// Reposition scatters the confetti within new bounds.
func (s *AnimationState) Reposition(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confetti.Reposition(width, height)
}

// Flame returns the flame primitive for rendering.
func (s *AnimationState) Flame() *card.Flame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flame
}

// Confetti returns the particle field for rendering.
func (s *AnimationState) Confetti() *card.Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.confetti
}
