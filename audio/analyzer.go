package audio

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"sync"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/lixenwraith/beatglow/constants"
)

// Detection tuning
const (
	// onsetFluxFactor scales the recent mean flux into the onset
	// trigger threshold
	onsetFluxFactor = 2.5

	// beatFluxFactor scales the recent mean low-band flux into the
	// beat trigger threshold
	beatFluxFactor = 3.0

	// minFlux is the absolute flux floor; silence never triggers
	minFlux = 0.05

	// onsetRefractorySec suppresses re-triggering after an onset
	onsetRefractorySec = 0.1

	// beatRefractorySec suppresses re-triggering after a beat
	beatRefractorySec = 0.25

	// lowBandEdge is the spectrum index bounding the "low" region used
	// for beat detection (~1.4 kHz at 44.1 kHz / 2048 window)
	lowBandEdge = 64

	// fluxHistoryLen is the number of past flux frames in the adaptive
	// threshold window (~1 s at the default hop)
	fluxHistoryLen = 43

	// energyGain maps window RMS onto the firmware's 0-65535 scale
	energyGain = 1 << 18

	// peakDecay is the per-frame decay of the adaptive bin normalizer
	peakDecay = 0.995

	// tempoHistoryLen is the number of beat intervals in the tempo
	// estimate
	tempoHistoryLen = 8
)

// Analyzer turns a raw sample stream into Features: banded spectrum
// magnitudes, aggregate energy, spectral-flux onset detection, low-band
// beat detection and a tempo estimate from beat spacing.
//
// Push is called from the audio playback goroutine, Features from the
// engine's frame loop; a single mutex covers both. Beat and onset flags
// latch between snapshots so a frame loop slower than the analysis hop
// never misses an event.
type Analyzer struct {
	mu sync.Mutex

	sampleRate int
	forward    func(spec []complex128, in []float64)

	ring    []float64 // last FFTWindow mono samples
	wpos    int
	total   int64 // mono samples consumed since start
	pending int   // samples since the last analysis

	hann    []float64
	buf     []float64
	spec    []complex128
	mag     []float64
	prevMag []float64

	fluxHist    []float64
	lowFluxHist []float64
	histPos     int
	histFill    int

	peak float64 // adaptive bin normalizer

	lastOnsetSample int64
	lastBeatSample  int64
	intervals       []float64 // recent beat intervals in seconds

	bins       [constants.NumFFTBins]uint8
	energy     uint16
	beatLatch  bool
	onsetLatch bool
	tempo      float64
}

// NewAnalyzer creates an analyzer for the given stream sample rate
func NewAnalyzer(sampleRate int) (*Analyzer, error) {
	if sampleRate <= 0 {
		sampleRate = constants.DefaultSampleRate
	}

	plan, err := algofft.NewPlanReal64(constants.FFTWindow)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}

	a := &Analyzer{
		sampleRate:      sampleRate,
		ring:            make([]float64, constants.FFTWindow),
		hann:            make([]float64, constants.FFTWindow),
		buf:             make([]float64, constants.FFTWindow),
		spec:            make([]complex128, constants.FFTWindow/2+1),
		mag:             make([]float64, constants.FFTWindow/2+1),
		prevMag:         make([]float64, constants.FFTWindow/2+1),
		fluxHist:        make([]float64, fluxHistoryLen),
		lowFluxHist:     make([]float64, fluxHistoryLen),
		lastOnsetSample: -1 << 62,
		lastBeatSample:  -1 << 62,
		intervals:       make([]float64, 0, tempoHistoryLen),
	}
	a.forward = func(spec []complex128, in []float64) {
		plan.Forward(spec, in)
	}
	for i := range a.hann {
		a.hann[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(constants.FFTWindow-1))
	}
	return a, nil
}

// Push mixes stereo samples down to mono and feeds them into the
// analysis window, running one analysis per hop once the window is full
func (a *Analyzer) Push(samples [][2]float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, s := range samples {
		a.ring[a.wpos] = (s[0] + s[1]) / 2
		a.wpos = (a.wpos + 1) % len(a.ring)
		a.total++
		a.pending++

		if a.total >= int64(len(a.ring)) && a.pending >= constants.FFTHop {
			a.pending = 0
			a.analyze()
		}
	}
}

// Features returns the current snapshot and clears the beat/onset
// latches
func (a *Analyzer) Features() Features {
	a.mu.Lock()
	defer a.mu.Unlock()

	f := Features{
		Bins:   a.bins,
		Beat:   a.beatLatch,
		Onset:  a.onsetLatch,
		Energy: a.energy,
		Tempo:  a.tempo,
	}
	a.beatLatch = false
	a.onsetLatch = false
	return f
}

// analyze runs one windowed FFT pass and updates all derived signals.
// Caller holds the mutex.
func (a *Analyzer) analyze() {
	// Oldest-first copy of the ring, windowed
	for i := range a.buf {
		a.buf[i] = a.ring[(a.wpos+i)%len(a.ring)] * a.hann[i]
	}
	a.forward(a.spec, a.buf)

	half := len(a.mag) - 1
	for k := 1; k <= half; k++ {
		a.mag[k] = cmplx.Abs(a.spec[k])
	}

	// Spectral flux (positive magnitude growth only)
	var flux, lowFlux float64
	for k := 1; k <= half; k++ {
		if d := a.mag[k] - a.prevMag[k]; d > 0 {
			flux += d
			if k <= lowBandEdge {
				lowFlux += d
			}
		}
	}
	flux /= float64(half)
	lowFlux /= float64(lowBandEdge)
	copy(a.prevMag, a.mag)

	fluxMean := histMean(a.fluxHist, a.histFill)
	lowMean := histMean(a.lowFluxHist, a.histFill)
	a.fluxHist[a.histPos] = flux
	a.lowFluxHist[a.histPos] = lowFlux
	a.histPos = (a.histPos + 1) % fluxHistoryLen
	if a.histFill < fluxHistoryLen {
		a.histFill++
	}

	a.detectBeat(lowFlux, lowMean)
	a.detectOnset(flux, fluxMean)
	a.updateBins(half)
	a.updateEnergy()
}

func (a *Analyzer) detectBeat(lowFlux, lowMean float64) {
	gap := int64(beatRefractorySec * float64(a.sampleRate))
	if lowFlux <= lowMean*beatFluxFactor+minFlux || a.total-a.lastBeatSample < gap {
		return
	}

	if a.lastBeatSample > 0 {
		interval := float64(a.total-a.lastBeatSample) / float64(a.sampleRate)
		// Plausible musical spacing only: 30-250 BPM
		if interval >= 0.24 && interval <= 2.0 {
			if len(a.intervals) == tempoHistoryLen {
				copy(a.intervals, a.intervals[1:])
				a.intervals = a.intervals[:tempoHistoryLen-1]
			}
			a.intervals = append(a.intervals, interval)
			a.tempo = 60.0 / median(a.intervals)
		}
	}
	a.lastBeatSample = a.total
	a.beatLatch = true
}

func (a *Analyzer) detectOnset(flux, fluxMean float64) {
	gap := int64(onsetRefractorySec * float64(a.sampleRate))
	if flux <= fluxMean*onsetFluxFactor+minFlux || a.total-a.lastOnsetSample < gap {
		return
	}
	a.lastOnsetSample = a.total
	a.onsetLatch = true
}

// updateBins groups spectrum magnitudes into the exported bands,
// normalized against a slowly decaying running peak
func (a *Analyzer) updateBins(half int) {
	bandWidth := half / constants.NumFFTBins

	a.peak *= peakDecay
	var bands [constants.NumFFTBins]float64
	for i := 0; i < constants.NumFFTBins; i++ {
		var sum float64
		for k := 0; k < bandWidth; k++ {
			sum += a.mag[1+i*bandWidth+k]
		}
		bands[i] = sum / float64(bandWidth)
		if bands[i] > a.peak {
			a.peak = bands[i]
		}
	}

	if a.peak <= 0 {
		a.bins = [constants.NumFFTBins]uint8{}
		return
	}
	for i, b := range bands {
		v := b / a.peak * 255
		if v > 255 {
			v = 255
		}
		a.bins[i] = uint8(v)
	}
}

func (a *Analyzer) updateEnergy() {
	var sum float64
	for _, s := range a.ring {
		sum += s * s
	}
	rms := math.Sqrt(sum / float64(len(a.ring)))
	e := rms * energyGain
	if e > math.MaxUint16 {
		e = math.MaxUint16
	}
	a.energy = uint16(e)
}

func histMean(hist []float64, fill int) float64 {
	if fill == 0 {
		return 0
	}
	var sum float64
	for _, v := range hist[:fill] {
		sum += v
	}
	return sum / float64(fill)
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
