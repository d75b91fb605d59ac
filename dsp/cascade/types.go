package cascade

import (
	"fmt"

	"github.com/gswdh/biquadr/dsp/filter/biquad"
	"github.com/gswdh/biquadr/dsp/filter/design"
)

// FilterType identifies the pass band of a filter specification.
type FilterType int

// Supported filter types.
const (
	Lowpass FilterType = iota
	Highpass
)

// String returns the stable tag emitted on coefficient records.
func (t FilterType) String() string {
	switch t {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return fmt.Sprintf("filtertype(%d)", int(t))
	}
}

// Valid reports whether t is a known filter type.
func (t FilterType) Valid() bool {
	return t == Lowpass || t == Highpass
}

// FilterSpec describes a single Butterworth filter within a channel.
// The name is unique within its channel; uniqueness is enforced by the
// editing collaborator, not here.
type FilterSpec struct {
	Name      string
	Type      FilterType
	Order     int     // even, in [2, 32]
	Frequency float64 // cutoff in Hz
	Enabled   bool
}

// Validate checks the spec's order and cutoff against the given sample
// rate. A cutoff at or above Nyquist fails with design.ErrUnstableDesign.
func (f *FilterSpec) Validate(sampleRate float64) error {
	return design.Validate(f.Order, f.Frequency, sampleRate/2)
}

// Design produces the spec's biquad sections (order/2 of them) at the
// given sample rate. The sample rate is always explicit; there is no
// ambient default.
func (f *FilterSpec) Design(sampleRate float64) ([]biquad.Coefficients, error) {
	switch f.Type {
	case Lowpass:
		return design.ButterworthLP(f.Frequency, f.Order, sampleRate)
	case Highpass:
		return design.ButterworthHP(f.Frequency, f.Order, sampleRate)
	default:
		return nil, fmt.Errorf("cascade: unknown filter type %d", int(f.Type))
	}
}

// Channel is a named, ordered list of filter specifications. The list
// order determines cascade order and coefficient emission order.
// A disabled channel contributes no coefficients and an identity
// response regardless of its filters' own enabled flags.
type Channel struct {
	Name    string
	Filters []FilterSpec
	Enabled bool
}

// AddFilter appends a filter to the channel.
func (c *Channel) AddFilter(f FilterSpec) {
	c.Filters = append(c.Filters, f)
}

// RemoveFilter removes the first filter with the given name.
// It reports whether a filter was removed.
func (c *Channel) RemoveFilter(name string) bool {
	for i := range c.Filters {
		if c.Filters[i].Name == name {
			c.Filters = append(c.Filters[:i], c.Filters[i+1:]...)
			return true
		}
	}

	return false
}

// Filter returns the first filter with the given name, or nil.
func (c *Channel) Filter(name string) *FilterSpec {
	for i := range c.Filters {
		if c.Filters[i].Name == name {
			return &c.Filters[i]
		}
	}

	return nil
}

// EnabledFilters returns the enabled filters in list order as a fresh
// slice. Callers may hold or modify the returned slice without
// disturbing the channel.
func (c *Channel) EnabledFilters() []FilterSpec {
	out := make([]FilterSpec, 0, len(c.Filters))
	for _, f := range c.Filters {
		if f.Enabled {
			out = append(out, f)
		}
	}

	return out
}

// TotalOrder sums the orders of the channel's filters. With
// includeDisabled, disabled filters count too.
func (c *Channel) TotalOrder(includeDisabled bool) int {
	total := 0
	for _, f := range c.Filters {
		if includeDisabled || f.Enabled {
			total += f.Order
		}
	}

	return total
}

// Project is a named, ordered list of channels sharing one sample rate.
// Per-channel or per-filter sample rates are not supported.
type Project struct {
	Name       string
	Channels   []Channel
	SampleRate float64
}

// Nyquist returns half the project sample rate.
func (p *Project) Nyquist() float64 {
	return p.SampleRate / 2
}

// AddChannel appends a channel to the project.
func (p *Project) AddChannel(c Channel) {
	p.Channels = append(p.Channels, c)
}

// RemoveChannel removes the first channel with the given name.
// It reports whether a channel was removed.
func (p *Project) RemoveChannel(name string) bool {
	for i := range p.Channels {
		if p.Channels[i].Name == name {
			p.Channels = append(p.Channels[:i], p.Channels[i+1:]...)
			return true
		}
	}

	return false
}

// Channel returns the first channel with the given name, or nil.
func (p *Project) Channel(name string) *Channel {
	for i := range p.Channels {
		if p.Channels[i].Name == name {
			return &p.Channels[i]
		}
	}

	return nil
}

// AllFilters returns every filter from every channel, in channel then
// filter list order, as a fresh slice.
func (p *Project) AllFilters() []FilterSpec {
	var out []FilterSpec
	for i := range p.Channels {
		out = append(out, p.Channels[i].Filters...)
	}

	return out
}

// EnabledFilters returns the enabled filters of enabled channels, in
// channel then filter list order, as a fresh slice.
func (p *Project) EnabledFilters() []FilterSpec {
	var out []FilterSpec
	for i := range p.Channels {
		if !p.Channels[i].Enabled {
			continue
		}

		out = append(out, p.Channels[i].EnabledFilters()...)
	}

	return out
}

// TotalOrder sums filter orders across the project. With
// includeDisabled, every filter of every channel counts; otherwise only
// enabled filters of enabled channels do.
func (p *Project) TotalOrder(includeDisabled bool) int {
	total := 0
	for i := range p.Channels {
		ch := &p.Channels[i]
		if includeDisabled {
			total += ch.TotalOrder(true)
			continue
		}

		if ch.Enabled {
			total += ch.TotalOrder(false)
		}
	}

	return total
}
