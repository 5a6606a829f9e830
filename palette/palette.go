package palette

import (
	"errors"
	"fmt"
)

// Colour is an RGB triple. Channels are nominally 0-255 but intermediate
// computation (intensity scaling, blending) may push them above 255;
// callers clamp before display with Clamped.
type Colour struct {
	R, G, B int
}

// Palette is an ordered sequence of base colours. The order is fixed at
// load time and never mutated by the simulation.
type Palette []Colour

// Default colour returned when the palette is empty
var defaultColour = Colour{128, 128, 128}

// ErrBadHexColour reports a malformed hex colour string
var ErrBadHexColour = errors.New("malformed hex colour")

// ColourAt interpolates a colour at a continuous palette position.
// Position 0 maps to the first colour and len-1 to the last. Positions
// below 0 clamp to the first colour and positions at or above len-1
// clamp to the last; interior positions lerp per channel between the
// two neighbouring palette entries, truncating to integer channels.
func (p Palette) ColourAt(position float64) Colour {
	switch len(p) {
	case 0:
		return defaultColour
	case 1:
		return p[0]
	}

	if position <= 0 {
		return p[0]
	}

	idx := int(position)
	if idx >= len(p)-1 {
		return p[len(p)-1]
	}

	frac := position - float64(idx)
	a, b := p[idx], p[idx+1]
	return Colour{
		R: int((1-frac)*float64(a.R) + frac*float64(b.R)),
		G: int((1-frac)*float64(a.G) + frac*float64(b.G)),
		B: int((1-frac)*float64(a.B) + frac*float64(b.B)),
	}
}

// Scaled multiplies every channel by intensity, truncating to integer.
// Intensity above 1.0 intentionally pushes channels past 255 so
// high-intensity sources blow out towards white when blended.
func (c Colour) Scaled(intensity float64) Colour {
	return Colour{
		R: int(float64(c.R) * intensity),
		G: int(float64(c.G) * intensity),
		B: int(float64(c.B) * intensity),
	}
}

// Clamped caps every channel at 255. Channels are never negative in the
// simulation so no lower clamp is applied.
func (c Colour) Clamped() Colour {
	if c.R > 255 {
		c.R = 255
	}
	if c.G > 255 {
		c.G = 255
	}
	if c.B > 255 {
		c.B = 255
	}
	return c
}

// ParseHex decodes "#RRGGBB" or "RRGGBB" into a Colour
func ParseHex(s string) (Colour, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Colour{}, fmt.Errorf("%w: %q", ErrBadHexColour, s)
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return Colour{}, fmt.Errorf("%w: %q", ErrBadHexColour, s)
		}
		ch[i] = hi<<4 | lo
	}
	return Colour{ch[0], ch[1], ch[2]}, nil
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}
