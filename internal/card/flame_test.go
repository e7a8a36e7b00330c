package card

import (
	"strings"
	"testing"
)

func TestNewFlameStartsAtBase(t *testing.T) {
	f := NewFlame(1)

	if f.heat != BaseFlameHeat {
		t.Errorf("Expected heat %d, got %d", BaseFlameHeat, f.heat)
	}
}

func TestFlameRestart(t *testing.T) {
	f := NewFlame(1)
	for i := 0; i < 50; i++ {
		f.Advance()
	}

	f.Restart()

	if f.heat != MaxFlameHeat {
		t.Errorf("Expected heat %d after restart, got %d", MaxFlameHeat, f.heat)
	}
	if f.frame != 0 {
		t.Errorf("Expected frame 0 after restart, got %d", f.frame)
	}
}

func TestFlameAdvanceStaysInBounds(t *testing.T) {
	f := NewFlame(42)
	f.Restart()

	for i := 0; i < 500; i++ {
		f.Advance()
		if f.heat > MaxFlameHeat {
			t.Fatalf("Heat %d exceeded max on frame %d", f.heat, i)
		}
		if f.heat < BaseFlameHeat-flameJitter {
			t.Fatalf("Heat %d below floor on frame %d", f.heat, i)
		}
	}
}

func TestFlameDecaysTowardBase(t *testing.T) {
	f := NewFlame(7)
	f.Restart()

	// After a restart the decay pulls the flame back down; somewhere in
	// the following frames it must touch the base band again.
	lowest := MaxFlameHeat
	for i := 0; i < 2000; i++ {
		f.Advance()
		if f.heat < lowest {
			lowest = f.heat
		}
	}

	if lowest > BaseFlameHeat {
		t.Errorf("Expected flame to decay to base %d, lowest seen %d", BaseFlameHeat, lowest)
	}
}

func TestFlameIntensityRange(t *testing.T) {
	f := NewFlame(3)
	for i := 0; i < 200; i++ {
		f.Advance()
		r := f.Intensity()
		if r < 0 || r > 1 {
			t.Fatalf("Intensity %f out of range on frame %d", r, i)
		}
	}
}

func TestFlameColorIsHex(t *testing.T) {
	f := NewFlame(3)
	c := f.Color()
	if !strings.HasPrefix(c, "#") || len(c) != 7 {
		t.Errorf("Expected hex color, got %q", c)
	}
}
