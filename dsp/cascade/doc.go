// Package cascade models filter projects: named channels holding
// ordered Butterworth filter specifications sharing one project-wide
// sample rate.
//
// The package aggregates per-filter designs into per-channel and
// per-project biquad coefficient sequences (filter-list and
// channel-list order) and combined frequency responses (cascade =
// product of transfer functions). It never mutates the Project,
// Channel or FilterSpec values it reads; filtered views are fresh
// slices, so concurrent readers of shared project data are safe as
// long as nobody mutates the project mid-computation.
package cascade
