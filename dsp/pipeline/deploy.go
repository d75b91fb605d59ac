package pipeline

import (
	"errors"
	"fmt"

	"github.com/gswdh/biquadr/dsp/cascade"
	"github.com/gswdh/biquadr/dsp/filter/design"
)

// Errors returned by target validation.
var (
	ErrInvalidTarget      = errors.New("pipeline: target max filter order must be in [2, 32]")
	ErrOrderExceedsTarget = errors.New("pipeline: filter order exceeds target maximum")
)

// Target describes a deployment system: a name, the numeric type its
// filter pipeline consumes, and the highest filter order it supports.
type Target struct {
	Name           string
	DataType       DataType
	MaxFilterOrder int
}

// Validate checks the target's order limit and data type.
func (t *Target) Validate() error {
	if t.MaxFilterOrder < design.MinOrder || t.MaxFilterOrder > design.MaxOrder {
		return ErrInvalidTarget
	}

	if !t.DataType.Valid() {
		return ErrInvalidDataType
	}

	return nil
}

// Deployment is a fully prepared coefficient set for one target:
// the padded, cast section sequence plus the metadata the export
// collaborator serializes alongside it. The engine never formats
// text itself.
type Deployment struct {
	Project    string
	SampleRate float64
	DataType   DataType
	Sections   []cascade.Record
}

// NumSections returns the deployed section count.
func (d *Deployment) NumSections() int {
	return len(d.Sections)
}

// Plan designs the project's enabled filters, pads the resulting
// sequence to the section count implied by the project (see
// [RequiredSections] for the includeDisabled flag), casts everything to
// the target's data type and attaches deployment metadata.
//
// Every counted filter's order must fit the target's MaxFilterOrder.
// Coefficients always come from enabled filters only; includeDisabled
// affects the padded size, so reserving room for currently disabled
// filters yields extra identity sections.
func Plan(p *cascade.Project, t Target, includeDisabled bool) (Deployment, error) {
	err := t.Validate()
	if err != nil {
		return Deployment{}, err
	}

	for _, f := range countedFilters(p, includeDisabled) {
		if f.Order > t.MaxFilterOrder {
			return Deployment{}, fmt.Errorf("%w: filter %q order %d, target %q max %d",
				ErrOrderExceedsTarget, f.Name, f.Order, t.Name, t.MaxFilterOrder)
		}
	}

	records, err := p.Coefficients()
	if err != nil {
		return Deployment{}, err
	}

	padded, err := Pad(records, RequiredSections(p, includeDisabled), t.DataType)
	if err != nil {
		return Deployment{}, err
	}

	return Deployment{
		Project:    p.Name,
		SampleRate: p.SampleRate,
		DataType:   t.DataType,
		Sections:   padded,
	}, nil
}

func countedFilters(p *cascade.Project, includeDisabled bool) []cascade.FilterSpec {
	if includeDisabled {
		return p.AllFilters()
	}

	return p.EnabledFilters()
}
