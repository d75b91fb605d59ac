package design

import (
	"errors"
	"math"
)

// Filter order limits shared by designers and deployment targets.
const (
	MinOrder = 2
	MaxOrder = 32
)

// Errors returned by validation and design functions.
var (
	ErrInvalidOrder     = errors.New("design: filter order must be even and in [2, 32]")
	ErrInvalidFrequency = errors.New("design: cutoff frequency must be positive and finite")
	ErrUnstableDesign   = errors.New("design: cutoff frequency must be below Nyquist")
)

// Validate checks a filter specification against the supported order
// range and frequency constraints.
//
// The order must be in [MinOrder, MaxOrder]; evenness is not checked
// here (the designers reject odd orders themselves). The cutoff must be
// positive and finite. When nyquistHz is positive, a cutoff at or above
// it fails with [ErrUnstableDesign]: the bilinear transform is singular
// there and would otherwise yield a NaN-laden cascade. Passing
// nyquistHz = 0 skips the Nyquist check.
func Validate(order int, cutoffHz, nyquistHz float64) error {
	if order < MinOrder || order > MaxOrder {
		return ErrInvalidOrder
	}

	if cutoffHz <= 0 || math.IsNaN(cutoffHz) || math.IsInf(cutoffHz, 0) {
		return ErrInvalidFrequency
	}

	if nyquistHz > 0 && cutoffHz >= nyquistHz {
		return ErrUnstableDesign
	}

	return nil
}
