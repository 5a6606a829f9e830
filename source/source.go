package source

import (
	"github.com/lixenwraith/beatglow/palette"
	"github.com/lixenwraith/beatglow/vmath"
)

// LightSource is one active, decaying emitter. Its position is fixed at
// creation to the centroid of the panel it was spawned on and never
// moves afterwards. Colour is resolved once at creation (palette colour
// scaled by intensity, channels may exceed 255); DiffusionAge is the
// only field that evolves over the source's life.
type LightSource struct {
	Pos          vmath.Vec2
	DiffusionAge float64
	Colour       palette.Colour
	Intensity    float64
	Speed        float64
	Energy       uint16
}

// Expired reports whether the source has aged past its contribution
// window. Expired sources may still be rendered while the list is at or
// below the simultaneous-colour floor.
func (s LightSource) Expired(maxAge float64) bool {
	return s.DiffusionAge > maxAge
}
