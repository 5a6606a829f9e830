package source

import (
	"github.com/lixenwraith/beatglow/constants"
	"github.com/lixenwraith/beatglow/palette"
	"github.com/lixenwraith/beatglow/vmath"
)

// List is the bounded, ordered collection of active light sources. It
// is backed by a fixed-capacity array so steady-state stepping does not
// allocate. Elements are kept sorted by ascending intensity at all
// times; the renderer depends on that order so the most intense source
// is blended last and visually dominates.
//
// At most one source exists per exact (x, y) position. Adding at an
// occupied position merges into the existing entry instead of
// inserting.
type List struct {
	items [constants.MaxSources]LightSource
	n     int
}

// Len returns the number of active sources
func (l *List) Len() int {
	return l.n
}

// At returns a copy of the source at index i, in ascending-intensity
// order. i must be in [0, Len()).
func (l *List) At(i int) LightSource {
	return l.items[i]
}

// Add spawns a source at pos with the given resolved colour. If a
// source already occupies pos exactly, that source is refreshed in
// place: age resets to zero, intensity and speed are overwritten, the
// original colour and energy are kept, and the list order is untouched.
// Add reports whether it merged rather than inserted.
//
// On insert, a full list first evicts index 0 (the lowest-intensity
// member), then the new source is placed directly after the last
// existing entry whose intensity is less than or equal to the new one.
func (l *List) Add(pos vmath.Vec2, colour palette.Colour, intensity, speed float64, energy uint16) (merged bool) {
	for i := 0; i < l.n; i++ {
		if l.items[i].Pos == pos {
			l.items[i].DiffusionAge = 0
			l.items[i].Intensity = intensity
			l.items[i].Speed = speed
			return true
		}
	}

	if l.n >= constants.MaxSources {
		l.removeAt(0)
	}

	// Scan from the tail for the insertion point; equal intensities
	// stay before the new entry
	i := l.n
	for i > 0 && intensity < l.items[i-1].Intensity {
		i--
	}
	copy(l.items[i+1:l.n+1], l.items[i:l.n])
	l.items[i] = LightSource{
		Pos:       pos,
		Colour:    colour,
		Intensity: intensity,
		Speed:     speed,
		Energy:    energy,
	}
	l.n++
	return false
}

// Diffuse ages every source by its own speed, then removes expired
// sources. Removal only happens while the list holds more than the
// simultaneous-colour floor; below that, expired sources keep rendering
// so the panels are never fully dark. Compaction preserves the relative
// order of survivors.
func (l *List) Diffuse() {
	for i := 0; i < l.n; i++ {
		l.items[i].DiffusionAge += l.items[i].Speed
	}

	if l.n <= constants.MinSimultaneousColours {
		return
	}
	for i := 0; i < l.n; i++ {
		if l.items[i].Expired(constants.MaxDiffusionAge) {
			l.removeAt(i)
			i--
		}
	}
}

// removeAt deletes index i, shifting later entries down
func (l *List) removeAt(i int) {
	copy(l.items[i:l.n-1], l.items[i+1:l.n])
	l.n--
	l.items[l.n] = LightSource{}
}
