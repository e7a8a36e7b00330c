package tui

import "testing"

func TestAnimationStartSetsFlag(t *testing.T) {
	s := NewAnimationState(1)

	if s.Animating() {
		t.Fatal("Expected new state to be idle")
	}

	s.Start()

	if !s.Animating() {
		t.Error("Expected animating after Start")
	}
}

func TestAnimationStopClearsFlag(t *testing.T) {
	s := NewAnimationState(1)
	s.Start()

	s.Stop()

	if s.Animating() {
		t.Error("Expected idle after Stop")
	}
}

func TestAnimationStartRestartsPrimitives(t *testing.T) {
	s := NewAnimationState(1)
	for i := 0; i < 10; i++ {
		s.Advance()
	}

	s.Start()

	if s.Confetti().Frame() != 0 {
		t.Error("Expected confetti cycle restarted")
	}
	if s.Flame().Intensity() != 1.0 {
		t.Errorf("Expected flame at full intensity, got %f", s.Flame().Intensity())
	}
}

func TestAnimationAdvanceCountsFrames(t *testing.T) {
	s := NewAnimationState(1)

	s.Advance()
	s.Advance()
	s.Advance()

	if s.Confetti().Frame() != 3 {
		t.Errorf("Expected frame 3, got %d", s.Confetti().Frame())
	}
}
