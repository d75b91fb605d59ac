package pipeline

import (
	"errors"
	"fmt"

	"github.com/gswdh/biquadr/dsp/cascade"
	"github.com/gswdh/biquadr/dsp/filter/biquad"
)

// Errors returned by padding and deployment planning.
var (
	ErrSectionCountMismatch = errors.New("pipeline: section count exceeds target pipeline size")
	ErrInvalidDataType      = errors.New("pipeline: invalid data type")
)

// IdentityTag is the origin tag carried by identity filler sections.
const IdentityTag = "identity"

// Pad returns records extended with identity sections to exactly
// targetCount entries, with every coefficient cast to the given data
// type. Filler sections are tagged IdentityTag and named
// "identity_<index>" after their position in the padded sequence, so
// consumers can distinguish real from filler sections.
//
// More records than targetCount is a logic error surfaced as
// [ErrSectionCountMismatch]; sequences are never silently truncated.
// The input slice is not modified.
func Pad(records []cascade.Record, targetCount int, dt DataType) ([]cascade.Record, error) {
	if !dt.Valid() {
		return nil, ErrInvalidDataType
	}

	if len(records) > targetCount {
		return nil, fmt.Errorf("%w: %d sections, target %d", ErrSectionCountMismatch, len(records), targetCount)
	}

	out := make([]cascade.Record, 0, targetCount)

	for _, r := range records {
		r.Coefficients = castCoefficients(r.Coefficients, dt)
		out = append(out, r)
	}

	for i := len(records); i < targetCount; i++ {
		out = append(out, cascade.Record{
			Coefficients: castCoefficients(biquad.Identity(), dt),
			Channel:      IdentityTag,
			Filter:       fmt.Sprintf("identity_%d", i),
			FilterType:   IdentityTag,
		})
	}

	return out, nil
}

// RequiredSections returns the biquad section count a pipeline must
// hold for the project: ceil(total order / 2). The includeDisabled flag
// chooses whether disabled filters (and filters of disabled channels)
// count toward the size; callers must pick one behavior explicitly.
func RequiredSections(p *cascade.Project, includeDisabled bool) int {
	return (p.TotalOrder(includeDisabled) + 1) / 2
}

func castCoefficients(c biquad.Coefficients, dt DataType) biquad.Coefficients {
	return biquad.Coefficients{
		B0: dt.Cast(c.B0),
		B1: dt.Cast(c.B1),
		B2: dt.Cast(c.B2),
		A1: dt.Cast(c.A1),
		A2: dt.Cast(c.A2),
	}
}
