// Package event: nuclear-remnant bookkeeping.
package event

import "go-hep.org/x/hep/fmom"

// Remnant tracks what is left of the target nucleus: nucleon count, electric
// charge, and the running 4-momentum balance. Every absorption and nucleon
// knockout posts here, so the event-wide sums in record.go close exactly.
type Remnant struct {
	// A is the number of nucleons still bound.
	A int

	// Charge is the electric charge in units of e.
	Charge int

	// Momentum is the remnant 4-momentum in GeV. Starts at rest with
	// mass A·MassAMU.
	Momentum fmom.PxPyPzE
}

// NewRemnant returns a remnant for a target with mass number a and charge z,
// at rest in the lab frame.
func NewRemnant(a, z int) Remnant {
	return Remnant{
		A:        a,
		Charge:   z,
		Momentum: fmom.NewPxPyPzE(0, 0, 0, float64(a)*MassAMU),
	}
}

// Absorb adds a hadron's full 4-momentum and charge to the remnant.
// Used when a hadron is absorbed by the medium.
func (rm *Remnant) Absorb(p fmom.PxPyPzE, charge int) {
	rm.Momentum = fmom.NewPxPyPzE(
		rm.Momentum.Px()+p.Px(),
		rm.Momentum.Py()+p.Py(),
		rm.Momentum.Pz()+p.Pz(),
		rm.Momentum.E()+p.E(),
	)
	rm.Charge += charge
}

// Recoil posts a 4-momentum difference to the remnant: dp is the momentum
// the in-flight hadron lost (positive components mean the remnant gains).
// Used by elastic and charge-exchange outcomes.
func (rm *Remnant) Recoil(dp fmom.PxPyPzE, dCharge int) {
	rm.Momentum = fmom.NewPxPyPzE(
		rm.Momentum.Px()+dp.Px(),
		rm.Momentum.Py()+dp.Py(),
		rm.Momentum.Pz()+dp.Pz(),
		rm.Momentum.E()+dp.E(),
	)
	rm.Charge += dCharge
}

// BindNucleon removes one nucleon (given by pdg) from the remnant and
// debits its rest energy from the remnant 4-momentum: the nucleon is handed
// to an inelastic final state at rest. Returns ErrRemnantExhausted when no
// nucleons are left.
func (rm *Remnant) BindNucleon(pdg int) error {
	if rm.A <= 0 {
		return ErrRemnantExhausted
	}
	m, ok := Mass(pdg)
	if !ok || !IsNucleon(pdg) {
		return ErrNotNucleon
	}
	rm.A--
	rm.Charge -= Charge(pdg)
	rm.Momentum = fmom.NewPxPyPzE(
		rm.Momentum.Px(),
		rm.Momentum.Py(),
		rm.Momentum.Pz(),
		rm.Momentum.E()-m,
	)

	return nil
}
