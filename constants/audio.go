package constants

// Frequency Analysis
const (
	// NumFFTBins is the number of frequency bins exposed to the engine
	NumFFTBins = 32

	// FFTWindow is the analysis window length in samples
	FFTWindow = 2048

	// FFTHop is the analysis stride in samples
	FFTHop = 1024

	// DefaultSampleRate is the expected input stream rate
	DefaultSampleRate = 44100
)

// Layout Geometry
const (
	// AdjacentPanelDistance is the centroid spacing of neighbouring
	// panels in panel-space units
	AdjacentPanelDistance = 86.599995
)
