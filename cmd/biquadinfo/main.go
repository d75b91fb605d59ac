// Command biquadinfo prints biquad coefficient tables for Butterworth
// filter designs.
//
// Usage:
//
//	biquadinfo [flags]
//
// Examples:
//
//	biquadinfo -type lowpass -order 4 -freq 1000
//	biquadinfo -type highpass -order 8 -freq 80 -rate 96000
//	biquadinfo -type lowpass -order 4 -freq 1000 -datatype int32 -sections 8
//	biquadinfo -type lowpass -order 2 -freq 1000 -response
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gswdh/biquadr/dsp/cascade"
	"github.com/gswdh/biquadr/dsp/filter/biquad"
	"github.com/gswdh/biquadr/dsp/pipeline"
)

func main() {
	ftype := flag.String("type", "lowpass", "filter type: lowpass or highpass")
	order := flag.Int("order", 4, "filter order (even, 2..32)")
	freq := flag.Float64("freq", 1000, "cutoff frequency in Hz")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	dtype := flag.String("datatype", "float64", "coefficient data type: float32, float64, int16, int32")
	sections := flag.Int("sections", 0, "pad to this many sections with identity fillers (0 = no padding)")
	response := flag.Bool("response", false, "print the magnitude response over the audible range")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: biquadinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints biquad section coefficients for a Butterworth design.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo -type lowpass -order 4 -freq 1000\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo -type highpass -order 8 -freq 80 -rate 96000\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo -type lowpass -order 4 -freq 1000 -datatype int32 -sections 8\n")
	}
	flag.Parse()

	ft, ok := parseType(*ftype)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown filter type %q (lowpass or highpass)\n", *ftype)
		os.Exit(1)
	}

	dt, ok := parseDataType(*dtype)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown data type %q\n", *dtype)
		os.Exit(1)
	}

	spec := cascade.FilterSpec{
		Name:      fmt.Sprintf("%s_%d_%g", ft, *order, *freq),
		Type:      ft,
		Order:     *order,
		Frequency: *freq,
		Enabled:   true,
	}

	coeffs, err := spec.Design(*rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	records := make([]cascade.Record, len(coeffs))
	for i, c := range coeffs {
		records[i] = cascade.Record{
			Coefficients: c,
			Channel:      "main",
			Filter:       spec.Name,
			FilterType:   ft.String(),
		}
	}

	target := len(records)
	if *sections > 0 {
		target = *sections
	}

	padded, err := pipeline.Pad(records, target, dt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSections(padded, *rate, dt)

	if *response {
		fmt.Println()
		printResponse(coeffs, *rate)
	}
}

func parseType(s string) (cascade.FilterType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowpass", "lp":
		return cascade.Lowpass, true
	case "highpass", "hp":
		return cascade.Highpass, true
	default:
		return 0, false
	}
}

func parseDataType(s string) (pipeline.DataType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float32":
		return pipeline.Float32, true
	case "float64":
		return pipeline.Float64, true
	case "int16":
		return pipeline.Int16, true
	case "int32":
		return pipeline.Int32, true
	default:
		return 0, false
	}
}

func printSections(records []cascade.Record, rate float64, dt pipeline.DataType) {
	fmt.Printf("Sample rate: %g Hz, data type: %s, sections: %d\n\n", rate, dt, len(records))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tFilter\tType\tB0\tB1\tB2\tA1\tA2\n")
	fmt.Fprintf(tw, "-\t------\t----\t--\t--\t--\t--\t--\n")

	for i, r := range records {
		c := r.Coefficients
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.10g\t%.10g\t%.10g\t%.10g\t%.10g\n",
			i, r.Filter, r.FilterType, c.B0, c.B1, c.B2, c.A1, c.A2)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(coeffs []biquad.Coefficients, rate float64) {
	chain := biquad.NewChain(coeffs)
	grid := cascade.LogSpace(cascade.DefaultGridStartHz, cascade.DefaultGridEndHz, 25)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMag [dB]\tPhase [deg]\n")
	fmt.Fprintf(tw, "---------\t--------\t-----------\n")

	for _, f := range grid {
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.1f\n", f, chain.MagnitudeDB(f, rate), chain.PhaseDegrees(f, rate))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
