// Package spectrum computes FFT-based magnitude spectra of designed
// filter cascades, as a cross-check against the closed-form response
// evaluation in dsp/cascade.
package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/gswdh/biquadr/dsp/core"
	"github.com/gswdh/biquadr/dsp/filter/biquad"
)

// Errors returned by spectrum computation.
var (
	ErrInvalidFFTSize    = errors.New("spectrum: fft size must be a positive power of two")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
)

// Bins holds a one-sided magnitude spectrum: fftSize/2+1 bins from DC
// to Nyquist, with bin k at k*sampleRate/fftSize Hz.
type Bins struct {
	Frequencies []float64
	MagnitudeDB []float64
}

// FromImpulse measures the cascade's magnitude response by running a
// unit impulse through the sections, transforming the first fftSize
// output samples and folding to the one-sided spectrum.
//
// The impulse response of an IIR cascade is infinite; truncating it at
// fftSize samples leaks a small error into the bins, shrinking as
// fftSize grows. For exact values use the closed-form evaluation in
// dsp/cascade instead.
func FromImpulse(coeffs []biquad.Coefficients, fftSize int, sampleRate float64) (Bins, error) {
	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return Bins{}, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	if sampleRate <= 0 {
		return Bins{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Bins{}, fmt.Errorf("spectrum fft plan: %w", err)
	}

	impulse := biquad.NewChain(coeffs).ImpulseResponse(fftSize)

	in := make([]complex128, fftSize)
	for i, v := range impulse {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Bins{}, fmt.Errorf("spectrum fft: %w", err)
	}

	nBins := fftSize/2 + 1
	re := make([]float64, nBins)
	im := make([]float64, nBins)

	for k := 0; k < nBins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, nBins)
	vecmath.Magnitude(mag, re, im)

	b := Bins{
		Frequencies: make([]float64, nBins),
		MagnitudeDB: make([]float64, nBins),
	}

	binHz := sampleRate / float64(fftSize)
	for k := 0; k < nBins; k++ {
		b.Frequencies[k] = float64(k) * binHz
		b.MagnitudeDB[k] = core.LinearToDB(mag[k])
	}

	return b, nil
}
