package design

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gswdh/biquadr/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestButterworthLP_SectionCount(t *testing.T) {
	sr := 48000.0
	for order := MinOrder; order <= MaxOrder; order += 2 {
		got, err := ButterworthLP(1000, order, sr)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		if len(got) != order/2 {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), order/2)
		}
	}
}

func TestButterworthHP_SectionCount(t *testing.T) {
	sr := 48000.0
	for order := MinOrder; order <= MaxOrder; order += 2 {
		got, err := ButterworthHP(1000, order, sr)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		if len(got) != order/2 {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), order/2)
		}
	}
}

func TestButterworth_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		freq  float64
		order int
		sr    float64
		want  error
	}{
		{name: "odd order", freq: 1000, order: 3, sr: 48000, want: ErrInvalidOrder},
		{name: "order too small", freq: 1000, order: 0, sr: 48000, want: ErrInvalidOrder},
		{name: "order too large", freq: 1000, order: 34, sr: 48000, want: ErrInvalidOrder},
		{name: "zero cutoff", freq: 0, order: 4, sr: 48000, want: ErrInvalidFrequency},
		{name: "negative cutoff", freq: -10, order: 4, sr: 48000, want: ErrInvalidFrequency},
		{name: "zero sample rate", freq: 1000, order: 4, sr: 0, want: ErrInvalidFrequency},
		{name: "cutoff at nyquist", freq: 24000, order: 4, sr: 48000, want: ErrUnstableDesign},
		{name: "cutoff above nyquist", freq: 25000, order: 4, sr: 48000, want: ErrUnstableDesign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fn := range []func(float64, int, float64) ([]biquad.Coefficients, error){ButterworthLP, ButterworthHP} {
				got, err := fn(tt.freq, tt.order, tt.sr)
				if !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}

				if got != nil {
					t.Fatalf("expected nil sections on error, got %d", len(got))
				}
			}
		})
	}
}

func TestButterworthLP_Minus3dBAtCutoff(t *testing.T) {
	sr := 48000.0
	freq := 1000.0
	want := 20 * math.Log10(1/math.Sqrt2)

	for _, order := range []int{2, 4, 6, 8, 16, 32} {
		coeffs, err := ButterworthLP(freq, order, sr)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		got := biquad.NewChain(coeffs).MagnitudeDB(freq, sr)
		if !almostEqual(got, want, 0.01) {
			t.Fatalf("order %d: %.4f dB at cutoff, want %.4f", order, got, want)
		}
	}
}

func TestButterworthHP_Minus3dBAtCutoff(t *testing.T) {
	sr := 48000.0
	freq := 2000.0
	want := 20 * math.Log10(1/math.Sqrt2)

	for _, order := range []int{2, 4, 8} {
		coeffs, err := ButterworthHP(freq, order, sr)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		got := biquad.NewChain(coeffs).MagnitudeDB(freq, sr)
		if !almostEqual(got, want, 0.01) {
			t.Fatalf("order %d: %.4f dB at cutoff, want %.4f", order, got, want)
		}
	}
}

func TestButterworthLP_HigherOrderSteeperRolloff(t *testing.T) {
	sr := 48000.0
	freq := 1000.0
	prevAtten := 0.0

	for _, order := range []int{2, 4, 6, 8} {
		coeffs, err := ButterworthLP(freq, order, sr)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		atten := -biquad.NewChain(coeffs).MagnitudeDB(4*freq, sr)
		if atten <= prevAtten {
			t.Fatalf("order %d: attenuation %.2f dB not steeper than %.2f dB", order, atten, prevAtten)
		}

		prevAtten = atten
	}
}

func TestButterworthLP_AsymptoticSlope(t *testing.T) {
	// An order-n Butterworth lowpass falls ~6.02*n dB per octave well
	// above cutoff: |H| ~ (f/fc)^-n.
	// Frequencies stay well below Nyquist so bilinear warping does not
	// distort the octave spacing.
	sr := 96000.0
	freq := 250.0

	for _, order := range []int{2, 4, 8} {
		coeffs, err := ButterworthLP(freq, order, sr)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		chain := biquad.NewChain(coeffs)
		drop := chain.MagnitudeDB(2000, sr) - chain.MagnitudeDB(4000, sr)
		want := 6.0206 * float64(order)

		if !almostEqual(drop, want, 0.5) {
			t.Fatalf("order %d: octave drop %.2f dB, want ~%.2f", order, drop, want)
		}
	}
}

func TestButterworth_AllSectionsNormalized(t *testing.T) {
	// Designed sections carry an implicit a0 of 1; stability requires
	// |A2| < 1 and |A1| < 1 + A2 for every section.
	for _, sr := range []float64{44100, 48000, 96000, 192000} {
		for order := MinOrder; order <= MaxOrder; order += 2 {
			coeffs, err := ButterworthLP(sr/48, order, sr)
			if err != nil {
				t.Fatalf("sr %v order %d: %v", sr, order, err)
			}

			for i, c := range coeffs {
				if math.Abs(c.A2) >= 1 || math.Abs(c.A1) >= 1+c.A2 {
					t.Fatalf("sr %v order %d section %d unstable: %+v", sr, order, i, c)
				}
			}
		}
	}
}

func TestButterworth_Deterministic(t *testing.T) {
	first, err := ButterworthLP(1234.5, 12, 48000)
	if err != nil {
		t.Fatal(err)
	}

	second, err := ButterworthLP(1234.5, 12, 48000)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated design calls produced different sections")
	}
}

func TestButterworth_AscendingQOrdering(t *testing.T) {
	// Sections are emitted with ascending Q: later sections have poles
	// closer to the unit circle, i.e. larger |A2|.
	coeffs, err := ButterworthLP(1000, 8, 48000)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(coeffs); i++ {
		if math.Abs(coeffs[i].A2) <= math.Abs(coeffs[i-1].A2) {
			t.Fatalf("section %d |A2|=%.6f not above section %d |A2|=%.6f",
				i, math.Abs(coeffs[i].A2), i-1, math.Abs(coeffs[i-1].A2))
		}
	}
}

func TestButterworth_LPHPSymmetryAtCutoff(t *testing.T) {
	sr := 48000.0
	freq := 2000.0
	order := 4

	lpCoeffs, err := ButterworthLP(freq, order, sr)
	if err != nil {
		t.Fatal(err)
	}

	hpCoeffs, err := ButterworthHP(freq, order, sr)
	if err != nil {
		t.Fatal(err)
	}

	lp := biquad.NewChain(lpCoeffs).MagnitudeDB(freq, sr)
	hp := biquad.NewChain(hpCoeffs).MagnitudeDB(freq, sr)

	if !almostEqual(lp, hp, 0.01) {
		t.Fatalf("LP cutoff %.3f dB, HP cutoff %.3f dB, expected equal", lp, hp)
	}
}

func TestButterworthQ_KnownValues(t *testing.T) {
	// Order 2, index 0: Q = 1/(2*sin(pi/4)) = 1/sqrt(2)
	got := butterworthQ(2, 0)
	want := 1 / math.Sqrt2

	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("order=2 index=0: Q=%.10f, want %.10f", got, want)
	}

	// Order 4: Q = {0.5412, 1.3066}
	if got := butterworthQ(4, 1); !almostEqual(got, 0.5411961001, 1e-9) {
		t.Fatalf("order=4 index=1: Q=%.10f, want 0.5411961001", got)
	}

	if got := butterworthQ(4, 0); !almostEqual(got, 1.3065629649, 1e-9) {
		t.Fatalf("order=4 index=0: Q=%.10f, want 1.3065629649", got)
	}
}
