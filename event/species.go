// Package event: the species scope of the cascade.
//
// The cascade transports pions and nucleons. Everything else (leptons,
// photons, heavy states handed over from upstream generators) is treated as
// transparent: submitted entries pass straight through with unchanged
// kinematics.
package event

// PDG codes for the species the cascade knows about.
const (
	PDGPiPlus  = 211
	PDGPiMinus = -211
	PDGPiZero  = 111
	PDGProton  = 2212
	PDGNeutron = 2112

	// Out-of-scope species that routinely appear in event records and are
	// useful for pass-through tests.
	PDGElectron = 11
	PDGMuon     = 13
	PDGPhoton   = 22
)

// Masses in GeV.
const (
	MassPiPlus  = 0.13957
	MassPiZero  = 0.13498
	MassProton  = 0.93827
	MassNeutron = 0.93957

	// MassAMU is the atomic mass unit in GeV, used for remnant bookkeeping.
	MassAMU = 0.93149
)

// Mass returns the rest mass in GeV of a cascade-scope species,
// and ok=false for species outside the scope.
func Mass(pdg int) (m float64, ok bool) {
	switch pdg {
	case PDGPiPlus, PDGPiMinus:
		return MassPiPlus, true
	case PDGPiZero:
		return MassPiZero, true
	case PDGProton:
		return MassProton, true
	case PDGNeutron:
		return MassNeutron, true
	default:
		return 0, false
	}
}

// Charge returns the electric charge in units of e. Species outside the
// cascade scope report zero; callers that care must gate on CanRescatter
// (pass-through entries never touch the remnant books, so their charge
// never enters the bookkeeping).
func Charge(pdg int) int {
	switch pdg {
	case PDGPiPlus, PDGProton:
		return 1
	case PDGPiMinus:
		return -1
	default:
		return 0
	}
}

// CanRescatter reports whether the species is inside the cascade's physical
// scope. Entries with out-of-scope species are always transparent.
func CanRescatter(pdg int) bool {
	switch pdg {
	case PDGPiPlus, PDGPiMinus, PDGPiZero, PDGProton, PDGNeutron:
		return true
	default:
		return false
	}
}

// IsPion reports whether pdg names a pion.
func IsPion(pdg int) bool {
	return pdg == PDGPiPlus || pdg == PDGPiMinus || pdg == PDGPiZero
}

// IsNucleon reports whether pdg names a nucleon.
func IsNucleon(pdg int) bool {
	return pdg == PDGProton || pdg == PDGNeutron
}
