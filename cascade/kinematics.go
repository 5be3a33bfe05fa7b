// Package cascade: outcome kinematics.
//
// Helpers for building interaction final states: isotropic directions,
// mass-shell 4-vectors, and exact two-body decays in the center-of-momentum
// frame boosted back to the lab. Three-body final states are built as
// sequential two-body decays through an intermediate cluster, which keeps
// energy-momentum conservation exact by construction.
package cascade

import (
	"math"
	"math/rand"

	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/spatial/r3"
)

// isotropicDir draws a unit vector uniformly on the sphere.
// Draw order (fixed): cosθ, then φ.
func isotropicDir(rng *rand.Rand) r3.Vec {
	cosTheta := 2*rng.Float64() - 1
	phi := 2 * math.Pi * rng.Float64()
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	return r3.Vec{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: cosTheta,
	}
}

// onShell builds the 4-momentum of a particle of mass m with 3-momentum p.
func onShell(m float64, p r3.Vec) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(p.X, p.Y, p.Z, math.Sqrt(m*m+r3.Norm2(p)))
}

// cmMomentum returns the magnitude of either daughter's momentum in the
// two-body CM frame: p* = √((W²−(m1+m2)²)(W²−(m1−m2)²)) / (2W).
func cmMomentum(w, m1, m2 float64) float64 {
	a := w*w - (m1+m2)*(m1+m2)
	b := w*w - (m1-m2)*(m1-m2)
	if a <= 0 || b <= 0 {
		return 0
	}

	return math.Sqrt(a*b) / (2 * w)
}

// twoBody splits total into two on-shell daughters of masses m1, m2 with an
// isotropic CM direction, boosted back to the frame of total.
// Returns errPhaseSpace when the invariant mass is below m1+m2.
//
// Draw order (fixed): one isotropicDir (2 draws).
func twoBody(rng *rand.Rand, total fmom.PxPyPzE, m1, m2 float64) (fmom.PxPyPzE, fmom.PxPyPzE, error) {
	w := total.M()
	if !(w > m1+m2) {
		return fmom.PxPyPzE{}, fmom.PxPyPzE{}, errPhaseSpace
	}

	pstar := cmMomentum(w, m1, m2)
	dir := isotropicDir(rng)
	d1 := onShell(m1, r3.Scale(pstar, dir))
	d2 := onShell(m2, r3.Scale(-pstar, dir))

	beta := fmom.BoostOf(&total)
	b1 := fmom.Boost(&d1, beta)
	b2 := fmom.Boost(&d2, beta)

	return asPxPyPzE(b1), asPxPyPzE(b2), nil
}

// asPxPyPzE materializes any P4 as a concrete PxPyPzE.
func asPxPyPzE(p fmom.P4) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(p.Px(), p.Py(), p.Pz(), p.E())
}

// subP4 is componentwise 4-vector subtraction (a − b), used for remnant
// recoil bookkeeping.
func subP4(a, b fmom.PxPyPzE) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(a.Px()-b.Px(), a.Py()-b.Py(), a.Pz()-b.Pz(), a.E()-b.E())
}
