package card

import "math/rand"

// particleGlyphs are the confetti shapes scattered around the card.
var particleGlyphs = []rune{'*', '+', '.', 'o', '~', '`'}

// twinklePeriod is the drift cycle length in frames. A particle hides on
// one frame of its cycle so the field shimmers instead of sitting still.
const twinklePeriod = 6

// Particle is one confetti glyph with its own position, color and
// animation phase. Phases are independent; particles share no clock
// beyond being advanced together.
type Particle struct {
	X, Y  int
	Glyph rune
	Color string
	Phase int
}

// Visible reports whether the particle is on the visible part of its
// twinkle cycle for the given frame.
func (p Particle) Visible(frame int) bool {
	return (p.Phase+frame)%twinklePeriod != 0
}

// Field owns the confetti particles.
type Field struct {
	particles []Particle
	width     int
	height    int
	frame     int
	rng       *rand.Rand
}

// NewField creates count particles. They have no positions until the
// first Reposition call sizes the field.
func NewField(count int, seed int64) *Field {
	f := &Field{
		particles: make([]Particle, count),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for i := range f.particles {
		f.particles[i] = f.newParticle(0, 0)
	}
	return f
}

func (f *Field) newParticle(width, height int) Particle {
	p := Particle{
		Glyph: particleGlyphs[f.rng.Intn(len(particleGlyphs))],
		Color: randomConfettiColor(f.rng),
		Phase: f.rng.Intn(twinklePeriod),
	}
	if width > 0 {
		p.X = f.rng.Intn(width)
	}
	if height > 0 {
		p.Y = f.rng.Intn(height)
	}
	return p
}

// Reposition scatters every particle to new random coordinates within
// the given bounds. Called on startup and after a settled resize.
func (f *Field) Reposition(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	f.width = width
	f.height = height
	for i := range f.particles {
		f.particles[i] = f.newParticle(width, height)
	}
}

// RestartAll re-seeds every particle's phase independently, so each one
// restarts its twinkle cycle from its own beginning.
func (f *Field) RestartAll() {
	f.frame = 0
	for i := range f.particles {
		f.particles[i].Phase = f.rng.Intn(twinklePeriod)
		f.particles[i].Color = randomConfettiColor(f.rng)
	}
}

// Advance runs one frame of the twinkle cycle.
func (f *Field) Advance() {
	f.frame++
}

// Frame returns the current frame counter.
func (f *Field) Frame() int {
	return f.frame
}

// Particles returns the particle slice for rendering.
func (f *Field) Particles() []Particle {
	return f.particles
}
