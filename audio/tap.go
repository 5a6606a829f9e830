package audio

import "github.com/gopxl/beep"

// Tap forwards a beep stream unchanged while copying every streamed
// sample into an Analyzer. Wrap the playback streamer with a Tap so the
// speaker and the analyzer see the same audio.
type Tap struct {
	Source   beep.Streamer
	Analyzer *Analyzer
}

// NewTap wraps source so streamed samples also reach the analyzer
func NewTap(source beep.Streamer, analyzer *Analyzer) *Tap {
	return &Tap{Source: source, Analyzer: analyzer}
}

func (t *Tap) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.Source.Stream(samples)
	if n > 0 {
		t.Analyzer.Push(samples[:n])
	}
	return n, ok
}

func (t *Tap) Err() error {
	return t.Source.Err()
}
