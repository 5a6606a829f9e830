// Package engine steps the light source simulation: one Step reads an
// audio feature snapshot, decides whether to spawn a source, renders
// every panel, and ages the population for the next frame.
package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/beatglow/audio"
	"github.com/lixenwraith/beatglow/constants"
	"github.com/lixenwraith/beatglow/layout"
	"github.com/lixenwraith/beatglow/palette"
	"github.com/lixenwraith/beatglow/render"
	"github.com/lixenwraith/beatglow/source"
)

// Options tunes a Driver. Zero values select defaults.
type Options struct {
	// Transition is attached to every panel frame, in tenths of a
	// second
	Transition int

	// Rand drives onset colour selection and anchor panel rotation.
	// Inject a seeded source for reproducible runs.
	Rand *rand.Rand
}

// Driver owns all simulation state: the source list, the dominant-bin
// running average, and the anchor panel rotation. It is single-threaded
// by design; one goroutine calls Step at the host's frame cadence.
type Driver struct {
	lay layout.Layout
	pal palette.Palette
	rng *rand.Rand

	sources source.List

	// Dominant-bin running average since the last beat
	binSum    int
	binFrames int

	// Anchor panel rotation
	anchor     int
	spawnCount int

	transition int
	frame      Frame // reused across steps
}

// New creates a driver for the given layout and palette. The layout
// must have been validated by the caller.
func New(lay layout.Layout, pal palette.Palette, opt Options) *Driver {
	if opt.Rand == nil {
		opt.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opt.Transition == 0 {
		opt.Transition = constants.DefaultTransitionTime
	}
	return &Driver{
		lay:        lay,
		pal:        pal,
		rng:        opt.Rand,
		transition: opt.Transition,
		frame:      make(Frame, len(lay)),
	}
}

// Sources exposes the live source list, read-only by convention.
// Intended for tests and preview overlays.
func (d *Driver) Sources() *source.List {
	return &d.sources
}

// Step advances the simulation by one frame: spawn on beat/onset,
// render every panel, then diffuse. The returned Frame always covers
// the full layout and is only valid until the next Step.
func (d *Driver) Step(f audio.Features) Frame {
	d.binSum += f.DominantBin()
	d.binFrames++

	switch {
	case f.Beat:
		// The colour tracks the frequencies heard since the last
		// beat, mapped so that typical music (which lives in the low
		// quarter of the bins) sweeps the whole palette. Spawn speed
		// follows tempo.
		avgBin := d.binSum / d.binFrames
		d.binSum = 0
		d.binFrames = 0

		position := float64(avgBin * len(d.pal) / (constants.NumFFTBins / 4))
		speed := f.Tempo / constants.TempoSpeedDivisor
		if speed < constants.MinSpawnSpeed {
			speed = constants.MinSpawnSpeed
		}
		d.spawn(position, constants.BeatIntensity, speed, f.Energy)

	case f.Onset:
		d.spawn(d.rng.Float64()*float64(len(d.pal)-1),
			constants.OnsetIntensity, constants.OnsetSpeed, f.Energy)
	}

	for i, p := range d.lay {
		c := render.PanelColour(p, &d.sources)
		d.frame[i] = PanelFrame{
			PanelID:    p.ID,
			R:          uint8(c.R),
			G:          uint8(c.G),
			B:          uint8(c.B),
			Transition: d.transition,
		}
	}

	d.sources.Diffuse()
	return d.frame
}

// spawn anchors a new source on the current anchor panel. The anchor
// rotates to a random panel every BeatCount spawns; a spawn carrying
// threshold energy expires the counter so the next spawn re-anchors
// immediately.
func (d *Driver) spawn(position, intensity, speed float64, energy uint16) {
	p := d.lay[d.anchor]

	d.spawnCount++
	if d.spawnCount >= constants.BeatCount {
		d.anchor = d.rng.Intn(len(d.lay))
		d.spawnCount = 0
	}

	colour := d.pal.ColourAt(position).Scaled(intensity)
	merged := d.sources.Add(p.Centroid, colour, intensity, speed, energy)
	if !merged && energy >= constants.EnergyThreshold {
		d.spawnCount = constants.BeatCount
	}
}
