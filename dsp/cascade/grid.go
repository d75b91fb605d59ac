package cascade

import "math"

// Default frequency grid covering the audible range.
const (
	DefaultGridStartHz = 20.0
	DefaultGridEndHz   = 20000.0
	DefaultGridPoints  = 1000
)

// LogSpace returns n logarithmically spaced frequencies from startHz to
// endHz inclusive. Returns nil for non-positive bounds or n <= 0.
func LogSpace(startHz, endHz float64, n int) []float64 {
	if n <= 0 || startHz <= 0 || endHz <= 0 {
		return nil
	}

	if n == 1 {
		return []float64{startHz}
	}

	out := make([]float64, n)
	l0 := math.Log10(startHz)
	step := (math.Log10(endHz) - l0) / float64(n-1)

	for i := range out {
		out[i] = math.Pow(10, l0+float64(i)*step)
	}

	return out
}

// DefaultGrid returns the standard plotting grid: 1000 log-spaced
// points from 20 Hz to 20 kHz.
func DefaultGrid() []float64 {
	return LogSpace(DefaultGridStartHz, DefaultGridEndHz, DefaultGridPoints)
}
