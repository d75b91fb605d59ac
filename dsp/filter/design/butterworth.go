package design

import (
	"math"

	"github.com/gswdh/biquadr/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade of the given even
// order, returning exactly order/2 a0-normalized biquad sections.
//
// Sections are emitted in ascending-Q order (pole pairs closest to the
// real axis first); the ordering is deterministic for identical inputs.
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	return butterworth(freq, order, sampleRate, lowpassSection)
}

// ButterworthHP designs a highpass Butterworth cascade of the given even
// order, returning exactly order/2 a0-normalized biquad sections.
//
// Section ordering follows the same ascending-Q rule as [ButterworthLP].
func ButterworthHP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	return butterworth(freq, order, sampleRate, highpassSection)
}

func butterworth(freq float64, order int, sampleRate float64, section func(freq, q, sampleRate float64) biquad.Coefficients) ([]biquad.Coefficients, error) {
	if order%2 != 0 {
		return nil, ErrInvalidOrder
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidFrequency
	}

	err := Validate(order, freq, sampleRate/2)
	if err != nil {
		return nil, err
	}

	n2 := order / 2
	sections := make([]biquad.Coefficients, 0, n2)

	for i := n2 - 1; i >= 0; i-- {
		sections = append(sections, section(freq, butterworthQ(order, i), sampleRate))
	}

	return sections, nil
}

// butterworthQ returns the quality factor for Butterworth section index.
// index ranges from 0 to (order/2 - 1).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

func lowpassSection(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func highpassSection(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
