// Package render derives a panel's displayed colour from the active
// light source population. Rendering is a pure fold over the source
// list in ascending-intensity order: each source's colour is blended
// into the running panel colour with a distance- and age-dependent
// weight, then the intermediate colour is hue-rotated by distance. The
// order is load-bearing: the most intense source is blended last and
// dominates the result.
package render

import (
	"github.com/lixenwraith/beatglow/constants"
	"github.com/lixenwraith/beatglow/layout"
	"github.com/lixenwraith/beatglow/palette"
	"github.com/lixenwraith/beatglow/source"
	"github.com/lixenwraith/beatglow/vmath"
)

// PanelColour computes the displayed colour for one panel from the full
// source list. It mutates nothing; the same inputs always produce the
// same colour.
func PanelColour(p layout.Panel, sources *source.List) palette.Colour {
	r := float64(constants.BaseColourR)
	g := float64(constants.BaseColourG)
	b := float64(constants.BaseColourB)

	for i := 0; i < sources.Len(); i++ {
		s := sources.At(i)
		d := vmath.Dist(p.Centroid, s.Pos)
		factor := attenuation(d, s.DiffusionAge, s.Energy)

		r = r*(1-factor) + float64(s.Colour.R)*factor
		g = g*(1-factor) + float64(s.Colour.G)*factor
		b = b*(1-factor) + float64(s.Colour.B)*factor

		// Rotate hue with distance so far panels drift in tone. The
		// value channel is shifted by the same modulo-360 arithmetic
		// as hue; with blown-out colours (V > 349) the wrap snaps the
		// panel dark. That is the firmware's defined behaviour, kept
		// literally - do not "fix" it to a 255 clamp.
		c := rgbToHSV(int(r), int(g), int(b))
		c.h = (c.h + int(d*constants.HueShiftPerDistance)) % 360
		c.v = (c.v + constants.ValueShiftPerSource) % 360
		rr, gg, bb := hsvToRGB(c)
		r, g, b = float64(rr), float64(gg), float64(bb)
	}

	return palette.Colour{R: int(r), G: int(g), B: int(b)}.Clamped()
}

// attenuation returns the blend weight of a source at distance d with
// the given diffusion age.
//
// High-energy sources use a slowly shrinking bright core: the effective
// distance contracts as the source ages, so the core stays saturated
// while the fringe fades. Everything else uses a plain inverse-distance
// falloff. Both are then scaled down linearly by age, zeroed at expiry,
// and floored so a listed source always keeps a minimal presence.
func attenuation(d, age float64, energy uint16) float64 {
	var factor float64
	if energy >= constants.EnergyThreshold {
		d2 := d*constants.CoreDistanceScale - age*constants.CoreAgeScale
		if d2 < 0 {
			d2 = 0
		}
		factor = 1 / (d2*2 + 1)
		if factor > 1 {
			factor = 1
		}
		if factor < 0 {
			factor = 0
		}
	} else {
		factor = 1 / (d*constants.FalloffDistanceScale + 1)
	}

	if age >= constants.MaxDiffusionAge {
		factor = 0
	} else {
		factor *= 1 - age/constants.MaxDiffusionAge
	}

	if factor < constants.FractionColourToKeep {
		factor = constants.FractionColourToKeep
	}
	return factor
}
