// Package testutil provides shared tolerance helpers for package tests.
package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps
// (absolute tolerance).
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, math.Abs(got-want), eps)
	}
}

// RequireSliceNear fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance).
func RequireSliceNear(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireAllZero fails t if any element of data is not exactly zero.
func RequireAllZero(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if v != 0 {
			t.Fatalf("index %d: got %v, want exactly 0", i, v)
		}
	}
}

// RequireFinite fails t if any element of data is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
