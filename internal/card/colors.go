package card

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// randomConfettiColor picks a bright saturated hue that reads well on
// both dark and light backgrounds.
func randomConfettiColor(rng *rand.Rand) string {
	h := rng.Float64() * 360.0
	c := colorful.Hsv(h, 0.75, 0.95)
	return c.Hex()
}
