package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/beatglow/constants"
)

// pushMono feeds n mono samples produced by gen into the analyzer
func pushMono(a *Analyzer, n int, gen func(i int) float64) {
	const chunk = 512
	buf := make([][2]float64, chunk)
	for fed := 0; fed < n; {
		m := chunk
		if n-fed < m {
			m = n - fed
		}
		for i := 0; i < m; i++ {
			v := gen(fed + i)
			buf[i][0] = v
			buf[i][1] = v
		}
		a.Push(buf[:m])
		fed += m
	}
}

func silence(int) float64 { return 0 }

func sine(freq float64, rate int, amp float64) func(i int) float64 {
	return func(i int) float64 {
		return amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
}

func TestAnalyzerSilence(t *testing.T) {
	a, err := NewAnalyzer(constants.DefaultSampleRate)
	if err != nil {
		t.Fatalf("Expected analyzer creation to succeed, got %v", err)
	}

	pushMono(a, constants.FFTWindow*4, silence)
	f := a.Features()

	if f.Energy != 0 {
		t.Errorf("Expected silence energy to be 0, got %d", f.Energy)
	}
	if f.Beat {
		t.Errorf("Expected no beat on silence")
	}
	if f.Onset {
		t.Errorf("Expected no onset on silence")
	}
}

func TestAnalyzerSineDominantBin(t *testing.T) {
	const rate = constants.DefaultSampleRate
	a, err := NewAnalyzer(rate)
	if err != nil {
		t.Fatalf("Expected analyzer creation to succeed, got %v", err)
	}

	// 2 kHz at 44.1 kHz with a 2048 window lands in spectrum bin ~93,
	// which is exported band 2 (32 spectrum bins per band)
	pushMono(a, constants.FFTWindow*4, sine(2000, rate, 0.8))
	f := a.Features()

	if got := f.DominantBin(); got != 2 {
		t.Errorf("Expected dominant bin to be 2, got %d", got)
	}
	if f.Energy == 0 {
		t.Errorf("Expected nonzero energy for a loud sine")
	}
}

func TestAnalyzerOnsetAfterSilence(t *testing.T) {
	const rate = constants.DefaultSampleRate
	a, err := NewAnalyzer(rate)
	if err != nil {
		t.Fatalf("Expected analyzer creation to succeed, got %v", err)
	}

	pushMono(a, constants.FFTWindow*4, silence)
	if f := a.Features(); f.Onset || f.Beat {
		t.Fatalf("Expected no events during silence, got %+v", f)
	}

	pushMono(a, constants.FFTWindow*2, sine(2000, rate, 0.8))
	f := a.Features()
	if !f.Onset {
		t.Errorf("Expected a silence-to-tone step to trigger an onset")
	}
}

func TestAnalyzerBeatOnBassBurst(t *testing.T) {
	const rate = constants.DefaultSampleRate
	a, err := NewAnalyzer(rate)
	if err != nil {
		t.Fatalf("Expected analyzer creation to succeed, got %v", err)
	}

	pushMono(a, constants.FFTWindow*4, silence)
	a.Features() // drop anything latched during warmup

	// 100 Hz burst: well inside the low band used for beat detection
	pushMono(a, constants.FFTWindow*2, sine(100, rate, 0.9))
	f := a.Features()
	if !f.Beat {
		t.Errorf("Expected a bass burst to trigger a beat")
	}
	if got := f.DominantBin(); got != 0 {
		t.Errorf("Expected dominant bin to be 0 for 100 Hz, got %d", got)
	}
}

func TestAnalyzerLatchClearsOnRead(t *testing.T) {
	const rate = constants.DefaultSampleRate
	a, err := NewAnalyzer(rate)
	if err != nil {
		t.Fatalf("Expected analyzer creation to succeed, got %v", err)
	}

	pushMono(a, constants.FFTWindow*4, silence)
	pushMono(a, constants.FFTWindow*2, sine(2000, rate, 0.8))

	first := a.Features()
	if !first.Onset {
		t.Fatalf("Expected the first snapshot to carry the onset")
	}
	second := a.Features()
	if second.Onset || second.Beat {
		t.Errorf("Expected latches to clear after a read, got %+v", second)
	}
}

func TestScripted(t *testing.T) {
	s := NewScripted(
		Features{Beat: true, Energy: 100},
		Features{Onset: true},
	)

	f := s.Features()
	if !f.Beat || f.Energy != 100 {
		t.Errorf("Expected first scripted snapshot, got %+v", f)
	}
	f = s.Features()
	if !f.Onset {
		t.Errorf("Expected second scripted snapshot, got %+v", f)
	}
	if s.Remaining() != 0 {
		t.Errorf("Expected no snapshots remaining, got %d", s.Remaining())
	}
	f = s.Features()
	if f.Beat || f.Onset || f.Energy != 0 {
		t.Errorf("Expected exhausted script to return silence, got %+v", f)
	}
}

func TestFeaturesDominantBin(t *testing.T) {
	tests := []struct {
		name string
		set  map[int]uint8
		want int
	}{
		{"All zero", nil, 0},
		{"Single peak", map[int]uint8{5: 200}, 5},
		{"First of equal peaks wins", map[int]uint8{3: 100, 9: 100}, 3},
		{"Last bin", map[int]uint8{31: 1}, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Features
			for i, v := range tt.set {
				f.Bins[i] = v
			}
			if got := f.DominantBin(); got != tt.want {
				t.Errorf("Expected dominant bin to be %d, got %d", tt.want, got)
			}
		})
	}
}
