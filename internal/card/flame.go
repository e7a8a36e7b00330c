package card

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// ---- Flame Parameters

const (
	// BaseFlameHeat is the resting flame intensity.
	BaseFlameHeat = 55

	// MaxFlameHeat is the intensity right after a replay.
	MaxFlameHeat = 100

	// FlameDecayRate is the heat lost per frame while above base.
	FlameDecayRate = 1

	// flameJitter is the per-frame flicker amplitude.
	flameJitter = 3
)

// flameGlyphs maps rising intensity tiers to candle flame glyphs.
var flameGlyphs = []rune{'.', ',', '*', '^', ')', '('}

// Flame tracks the candle flame across frames. Heat spikes on replay and
// decays back toward the base while flickering.
type Flame struct {
	heat  int
	frame int
	rng   *rand.Rand
}

// NewFlame creates a flame at resting intensity.
func NewFlame(seed int64) *Flame {
	return &Flame{
		heat: BaseFlameHeat,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Restart kicks the flame back to full intensity from its own start.
func (f *Flame) Restart() {
	f.heat = MaxFlameHeat
	f.frame = 0
}

// Advance runs one frame: flicker plus decay toward the base heat.
func (f *Flame) Advance() {
	f.frame++
	f.heat += f.rng.Intn(2*flameJitter+1) - flameJitter
	if f.heat > BaseFlameHeat {
		f.heat -= FlameDecayRate
	}
	if f.heat > MaxFlameHeat {
		f.heat = MaxFlameHeat
	}
	if f.heat < BaseFlameHeat-flameJitter {
		f.heat = BaseFlameHeat - flameJitter
	}
}

// Intensity returns the current heat as a 0.0-1.0 ratio.
func (f *Flame) Intensity() float64 {
	ratio := float64(f.heat) / float64(MaxFlameHeat)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Glyph returns the flame glyph for the current intensity tier.
func (f *Flame) Glyph() rune {
	idx := int(f.Intensity() * float64(len(flameGlyphs)))
	if idx >= len(flameGlyphs) {
		idx = len(flameGlyphs) - 1
	}
	return flameGlyphs[idx]
}

// Color returns the flame color as a hex string, blended from ember red
// at rest to bright yellow at full intensity.
func (f *Flame) Color() string {
	ember, _ := colorful.Hex("#d2491f")
	tip, _ := colorful.Hex("#ffdd55")
	return ember.BlendLab(tip, f.Intensity()).Hex()
}
