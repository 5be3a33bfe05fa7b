// Package xsec: mean free paths and fate selection.
package xsec

import (
	"fmt"
	"math"
)

// MeanFreePaths evaluates λ_channel = 1/(σ_channel·ρ) for every channel the
// table defines for pdg, at kinetic energy ke (GeV) and local density ρ
// (fm⁻³). Channels appear in the fixed enumeration order.
//
// Returns nil (no error) for species outside the cascade scope: such
// hadrons are transparent. Zero density or zero σ yields λ = +Inf for the
// affected channel.
//
// Errors: ErrNilTable, ErrBadKineticEnergy, ErrNegativeDensity.
func MeanFreePaths(t *Table, pdg int, ke, density float64) ([]PathLen, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if math.IsNaN(ke) || math.IsInf(ke, 0) || ke < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadKineticEnergy, ke)
	}
	if math.IsNaN(density) || math.IsInf(density, 0) || density < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeDensity, density)
	}

	chans := t.Channels(pdg)
	if len(chans) == 0 {
		return nil, nil
	}

	out := make([]PathLen, 0, len(chans))
	for _, ch := range chans {
		sigma := t.Sigma(pdg, ch, ke) * MbToFm2 // fm²
		lambda := math.Inf(1)
		if sigma > 0 && density > 0 {
			lambda = 1 / (sigma * density)
		}
		out = append(out, PathLen{Channel: ch, Lambda: lambda})
	}

	return out, nil
}

// Total combines per-channel mean free paths into the total one:
// 1/λ_total = Σ 1/λ_channel. Returns +Inf for an empty set or when every
// channel is infinite (free streaming).
func Total(paths []PathLen) float64 {
	inv := 0.0
	for _, p := range paths {
		if !math.IsInf(p.Lambda, 1) && p.Lambda > 0 {
			inv += 1 / p.Lambda
		}
	}
	if inv == 0 {
		return math.Inf(1)
	}

	return 1 / inv
}

// SelectFate maps one uniform draw u ∈ [0,1) to an interaction channel.
// Each channel owns the probability λ_total/λ_channel; segments are laid
// out in the fixed enumeration order, so a fixed random stream reproduces
// fates bit-for-bit. By construction the probabilities sum to exactly 1 —
// the no-interaction branch is the stepper's job, and SelectFate is only
// called once an interaction is known to occur.
//
// Errors: ErrNoChannels, ErrNoInteraction, ErrBadDraw.
func SelectFate(paths []PathLen, total, u float64) (Channel, error) {
	if len(paths) == 0 {
		return 0, ErrNoChannels
	}
	if math.IsInf(total, 1) || total <= 0 || math.IsNaN(total) {
		return 0, fmt.Errorf("%w: λ_total=%g", ErrNoInteraction, total)
	}
	if math.IsNaN(u) || u < 0 || u >= 1 {
		return 0, fmt.Errorf("%w: %g", ErrBadDraw, u)
	}

	cum := 0.0
	for _, p := range paths {
		if math.IsInf(p.Lambda, 1) {
			continue // zero-σ channel: zero probability segment
		}
		cum += total / p.Lambda
		if u < cum {
			return p.Channel, nil
		}
	}

	// Floating-point shortfall: the partition sums to 1 analytically, so u
	// can only land here through rounding. The last finite segment takes it.
	for i := len(paths) - 1; i >= 0; i-- {
		if !math.IsInf(paths[i].Lambda, 1) {
			return paths[i].Channel, nil
		}
	}

	return 0, ErrNoChannels // unreachable: total finite ⇒ a finite λ exists
}
