package cascade

import (
	"fmt"

	"github.com/gswdh/biquadr/dsp/filter/biquad"
)

// Record is one emitted biquad section tagged with its origin. a0 is
// implicitly 1 (the designers pre-normalize). Identity filler sections
// produced by dsp/pipeline carry Channel and FilterType "identity".
// A Record is immutable once produced: it is a pure function of its
// originating FilterSpec and the project sample rate.
type Record struct {
	Coefficients biquad.Coefficients
	Channel      string
	Filter       string
	FilterType   string
}

// Coefficients designs and concatenates the sections of the channel's
// enabled filters, in filter-list order. A disabled channel, or a
// channel with no enabled filters, yields no records. A failing design
// aborts the whole channel: silently omitting the offending filter
// would misrepresent the designed response.
func (c *Channel) Coefficients(sampleRate float64) ([]Record, error) {
	if !c.Enabled {
		return nil, nil
	}

	var records []Record

	for i := range c.Filters {
		f := &c.Filters[i]
		if !f.Enabled {
			continue
		}

		sections, err := f.Design(sampleRate)
		if err != nil {
			return nil, fmt.Errorf("cascade: channel %q filter %q: %w", c.Name, f.Name, err)
		}

		for _, s := range sections {
			records = append(records, Record{
				Coefficients: s,
				Channel:      c.Name,
				Filter:       f.Name,
				FilterType:   f.Type.String(),
			})
		}
	}

	return records, nil
}

// Coefficients concatenates the coefficient records of the project's
// enabled channels, in channel-list order, at the project sample rate.
// Disabled channels contribute nothing. An empty project yields no
// records.
func (p *Project) Coefficients() ([]Record, error) {
	var records []Record

	for i := range p.Channels {
		ch := &p.Channels[i]
		if !ch.Enabled {
			continue
		}

		recs, err := ch.Coefficients(p.SampleRate)
		if err != nil {
			return nil, err
		}

		records = append(records, recs...)
	}

	return records, nil
}
