// Package design provides Butterworth IIR filter coefficient designers.
//
// The functions in this package validate filter specifications and
// produce cascades of a0-normalized biquad coefficients consumable by
// dsp/filter/biquad. Only even orders in [2, 32] are supported: the
// second-order-section decomposition pairs complex-conjugate poles, so
// every designed cascade consists of full biquad sections.
//
// All computation is double precision; casting to deployment numeric
// types happens downstream in dsp/pipeline.
package design
