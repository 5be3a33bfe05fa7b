// Package cascade: the stepper.
//
// The stepper advances a hadron along its momentum direction by a
// stochastically sampled distance and reports whether it is still inside
// the medium. The mean free path is piecewise-constant per step: λ is
// evaluated at the position where the step starts, held fixed for the
// sampled distance, then re-evaluated at the new position — the standard
// discretization for straight-line transport Monte Carlo.
package cascade

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// sampleStep draws one free-path length from the exponential distribution
// with scale lambda, consuming exactly one uniform draw.
//
// The draw u ∈ [0,1) maps through the inverse CDF d = −λ·ln(1−u); 1−u is
// never zero, so the result is always finite for finite λ. Callers must
// handle infinite λ themselves (immediate escape, zero draws).
func sampleStep(rng *rand.Rand, lambda float64) float64 {
	return -lambda * math.Log1p(-rng.Float64())
}

// advance moves the hadron by distance d along its momentum direction and
// advances its clock by d/β (β = |p|/E).
func advance(h *Hadron, d float64) {
	p := pmag(h.Momentum)
	if p <= 0 {
		return // at rest: nowhere to go
	}
	dir := r3.Scale(1/p, r3.Vec{X: h.Momentum.Px(), Y: h.Momentum.Py(), Z: h.Momentum.Pz()})
	h.Position = r3.Add(h.Position, r3.Scale(d, dir))
	h.Time += d * h.Momentum.E() / p
}

// radial returns the hadron's radial distance from the nuclear center.
func (h *Hadron) radial() float64 {
	return r3.Norm(h.Position)
}
