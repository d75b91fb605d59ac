// Package biquad provides biquad (second-order IIR) filter primitives.
//
// A [Coefficients] value describes one second-order section with a0
// normalized to 1. [Section] implements Direct Form II Transposed
// processing for a single section; [Chain] cascades multiple sections
// for higher-order filters. Frequency-response evaluation (complex
// transfer function, magnitude, phase) is provided on both.
//
// Coefficient design (Butterworth lowpass/highpass cascades) lives in
// dsp/filter/design.
package biquad
