package audio

import "github.com/lixenwraith/beatglow/constants"

// Features is one snapshot of the audio signals the engine consumes
// each frame. All fields are plain values; a snapshot stays valid after
// the provider moves on.
type Features struct {
	// Bins holds frequency-band magnitudes, low frequencies first
	Bins [constants.NumFFTBins]uint8

	// Beat is set when a beat was detected since the last snapshot
	Beat bool

	// Onset is set when a non-beat onset was detected since the last
	// snapshot
	Onset bool

	// Energy is the aggregate loudness on the panel firmware's
	// 0-65535 scale
	Energy uint16

	// Tempo is the current tempo estimate in BPM, 0 when unknown
	Tempo float64
}

// DominantBin returns the index of the strongest frequency band
func (f Features) DominantBin() int {
	best := 0
	var bestMag uint8
	for i, m := range f.Bins {
		if m > bestMag {
			bestMag = m
			best = i
		}
	}
	return best
}

// Provider supplies feature snapshots to the engine, pull-based. The
// engine never blocks on a provider; each call returns immediately with
// the latest state.
type Provider interface {
	Features() Features
}
