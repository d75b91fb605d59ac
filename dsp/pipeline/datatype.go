package pipeline

import (
	"fmt"
	"math"
)

// DataType identifies the numeric representation of deployed
// coefficients.
type DataType int

// Supported coefficient data types.
const (
	Float32 DataType = iota
	Float64
	Int16
	Int32
)

// String returns the stable tag for the data type ("float32", ...).
func (d DataType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	default:
		return fmt.Sprintf("datatype(%d)", int(d))
	}
}

// Valid reports whether d is a known data type.
func (d DataType) Valid() bool {
	switch d {
	case Float32, Float64, Int16, Int32:
		return true
	default:
		return false
	}
}

// Cast returns v as representable in the data type: Float64 is the
// identity, Float32 rounds through a 32-bit float, and the integer
// types truncate toward zero, saturating at the type bounds. NaN casts
// to 0 for integer types.
func (d DataType) Cast(v float64) float64 {
	switch d {
	case Float32:
		return float64(float32(v))
	case Int16:
		return castInteger(v, math.MinInt16, math.MaxInt16)
	case Int32:
		return castInteger(v, math.MinInt32, math.MaxInt32)
	default:
		return v
	}
}

func castInteger(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	t := math.Trunc(v)
	if t < lo {
		return lo
	}

	if t > hi {
		return hi
	}

	return t
}
