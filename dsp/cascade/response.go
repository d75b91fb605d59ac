package cascade

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/gswdh/biquadr/dsp/core"
	"github.com/gswdh/biquadr/dsp/filter/biquad"
)

// FrequencyResponse holds a sampled frequency response. All three
// slices have the same length; Frequencies is the caller-supplied grid.
// Derived, not persisted.
type FrequencyResponse struct {
	Frequencies  []float64
	MagnitudeDB  []float64
	PhaseDegrees []float64
}

// Response computes the channel's combined frequency response over the
// given grid: per frequency, the complex product of every enabled
// filter's cascade transfer function at ω = 2πf/sampleRate.
//
// A disabled channel, or one with no enabled filters, returns the
// identity response (0 dB, 0° everywhere) — no filtering applied, not
// silence.
func (c *Channel) Response(freqs []float64, sampleRate float64) (FrequencyResponse, error) {
	enabled := c.EnabledFilters()
	if !c.Enabled || len(enabled) == 0 {
		return identityResponse(freqs), nil
	}

	chains := make([]*biquad.Chain, len(enabled))

	for i := range enabled {
		sections, err := enabled[i].Design(sampleRate)
		if err != nil {
			return FrequencyResponse{}, fmt.Errorf("cascade: channel %q filter %q: %w", c.Name, enabled[i].Name, err)
		}

		chains[i] = biquad.NewChain(sections)
	}

	n := len(freqs)
	re := make([]float64, n)
	im := make([]float64, n)

	for k, f := range freqs {
		h := complex(1, 0)
		for _, chain := range chains {
			h *= chain.Response(f, sampleRate)
		}

		re[k] = real(h)
		im[k] = imag(h)
	}

	return polarResponse(freqs, re, im), nil
}

// Response computes the project's combined frequency response over the
// given grid at the project sample rate: the product of the enabled
// channels' responses.
//
// Each channel's response is reconstructed from its (dB, degrees) form
// via 10^(mag/20)·e^(i·phase) before multiplying. This polar round trip
// is the combination rule, deliberately kept: it is not equivalent to
// summing dB values when phase is tracked.
func (p *Project) Response(freqs []float64) (FrequencyResponse, error) {
	n := len(freqs)
	re := make([]float64, n)
	im := make([]float64, n)

	for k := range re {
		re[k] = 1
	}

	for ci := range p.Channels {
		ch := &p.Channels[ci]
		if !ch.Enabled {
			continue
		}

		resp, err := ch.Response(freqs, p.SampleRate)
		if err != nil {
			return FrequencyResponse{}, err
		}

		for k := 0; k < n; k++ {
			h := complex(re[k], im[k]) *
				cmplx.Rect(core.DBToLinear(resp.MagnitudeDB[k]), core.DegreesToRadians(resp.PhaseDegrees[k]))
			re[k], im[k] = real(h), imag(h)
		}
	}

	return polarResponse(freqs, re, im), nil
}

// identityResponse is the flat 0 dB / 0° response over freqs.
func identityResponse(freqs []float64) FrequencyResponse {
	return FrequencyResponse{
		Frequencies:  freqs,
		MagnitudeDB:  make([]float64, len(freqs)),
		PhaseDegrees: make([]float64, len(freqs)),
	}
}

// polarResponse converts complex response planes to (dB, degrees).
func polarResponse(freqs, re, im []float64) FrequencyResponse {
	n := len(freqs)
	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	db := make([]float64, n)
	ph := make([]float64, n)

	for i := range mag {
		db[i] = core.LinearToDB(mag[i])
		ph[i] = core.RadiansToDegrees(math.Atan2(im[i], re[i]))
	}

	return FrequencyResponse{
		Frequencies:  freqs,
		MagnitudeDB:  db,
		PhaseDegrees: ph,
	}
}
