// Package cascade: the formation-zone model.
package cascade

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// FormationLength returns the distance a freshly produced hadron
// free-streams before it can interact, in fm.
//
// Model: L = c·t0 · K · γ · x, where
//   - c·t0 is the proper formation time scale (WithFormationTime),
//   - K is a dimensionless tuning factor (WithFormationScale),
//   - γ = E/m boosts the proper time into the lab frame,
//   - x = |p_hadron| / |p_parent| is the hadron's momentum fraction of the
//     parent hadronic system, clamped to [0,1]: harder fragments
//     materialize further from the production vertex.
//
// Edge cases (all documented contracts, not errors):
//   - massless or unphysical momentum (m ≤ 0) ⇒ 0,
//   - parent at rest (|p_parent| = 0) ⇒ x = 0 ⇒ 0,
//   - L = 0 means the hadron is Propagating immediately.
//
// Complexity: O(1); no randomness.
func FormationLength(mom, parent fmom.PxPyPzE, ct0, scale float64) float64 {
	if ct0 <= 0 || scale <= 0 {
		return 0
	}
	m := mom.M()
	if !(m > 0) {
		return 0
	}

	p := pmag(mom)
	pp := pmag(parent)
	if pp <= 0 {
		return 0
	}
	x := p / pp
	if x > 1 {
		x = 1
	}
	gamma := mom.E() / m

	return ct0 * scale * gamma * x
}

// pmag returns the 3-momentum magnitude of a 4-vector.
func pmag(p fmom.PxPyPzE) float64 {
	return math.Sqrt(p.Px()*p.Px() + p.Py()*p.Py() + p.Pz()*p.Pz())
}
