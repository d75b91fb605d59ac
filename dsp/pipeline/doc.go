// Package pipeline prepares designed coefficient sequences for
// deployment on fixed-size hardware filter pipelines.
//
// It casts coefficients to the target's numeric representation and pads
// coefficient sequences with identity sections (b0 = 1, all others 0)
// to an exact section count. The fixed-point wire format for integer
// targets is an export-collaborator concern; this package only
// guarantees that each emitted value is representable in the target
// type.
package pipeline
