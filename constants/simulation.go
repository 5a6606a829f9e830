package constants

import "time"

// Light Source Population
const (
	// MaxSources is the hard capacity of the light source list
	MaxSources = 15

	// MinSimultaneousColours is the floor below which expired sources are
	// kept rendering instead of removed, so the panels never go fully dark
	MinSimultaneousColours = 2

	// MaxDiffusionAge is the age at which a source stops contributing and
	// becomes eligible for removal
	MaxDiffusionAge = 15.0
)

// Spawn Policy
const (
	// BeatCount is the number of spawns before the anchor panel rotates
	BeatCount = 8

	// EnergyThreshold selects the bright-core attenuation model and forces
	// the anchor panel to rotate on the next spawn
	EnergyThreshold uint16 = 50000

	// BeatIntensity is the spawn intensity for beat-triggered sources
	BeatIntensity = 1.0

	// OnsetIntensity is the spawn intensity for onset-triggered sources
	OnsetIntensity = 0.7

	// OnsetSpeed is the fixed diffusion speed for onset-triggered sources
	OnsetSpeed = 0.8

	// MinSpawnSpeed clamps the tempo-derived diffusion speed from below
	MinSpawnSpeed = 0.2

	// TempoSpeedDivisor converts tempo (BPM) into diffusion speed
	TempoSpeedDivisor = 50.0
)

// Frame Timing
const (
	// DefaultFrameInterval is the engine step cadence
	DefaultFrameInterval = 50 * time.Millisecond

	// DefaultTransitionTime is attached to every panel frame, in tenths
	// of a second
	DefaultTransitionTime = 1
)
