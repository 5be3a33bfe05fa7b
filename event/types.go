// Package event: transport statuses, particle entries and sentinel errors.
//
// This file declares Status, Particle, the NoMother marker and the sentinel
// errors shared by the ledger operations in record.go.
package event

import (
	"errors"

	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for ledger operations.
var (
	// ErrIndexOutOfRange indicates a particle index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("event: particle index out of range")

	// ErrBadMother indicates an Append with a mother index that is neither
	// NoMother nor a valid existing entry.
	ErrBadMother = errors.New("event: mother index out of range")

	// ErrBadStatus indicates an unknown Status value.
	ErrBadStatus = errors.New("event: unknown status")

	// ErrStatusRegression indicates an attempt to move a particle status
	// backwards, or to move it at all once a terminal status is set.
	ErrStatusRegression = errors.New("event: status may only move forward")

	// ErrRemnantExhausted indicates an attempt to bind a nucleon from a
	// remnant that has none left.
	ErrRemnantExhausted = errors.New("event: nuclear remnant has no nucleons left")

	// ErrNotNucleon indicates a BindNucleon call with a non-nucleon species.
	ErrNotNucleon = errors.New("event: bind nucleon requires a nucleon PDG code")
)

// NoMother marks a primary particle (no ledger mother).
const NoMother = -1

// Status is the transport state of one ledger entry.
//
// The order of the constants is the only legal direction of travel:
// a status may move to any strictly larger value, and the three largest
// values are terminal.
type Status int

const (
	// StatusPreCascade: freshly produced inside the nucleus, not yet
	// submitted to transport.
	StatusPreCascade Status = iota

	// StatusInFormationZone: traveling its formation length; free-streams
	// and is exempt from interaction.
	StatusInFormationZone

	// StatusPropagating: inside the nucleus and subject to interaction.
	StatusPropagating

	// StatusEscaped: left the nuclear medium (terminal).
	StatusEscaped

	// StatusAbsorbed: absorbed by the medium, 4-momentum transferred to the
	// remnant (terminal).
	StatusAbsorbed

	// StatusRescattered: replaced by rescattering products (terminal).
	StatusRescattered

	numStatuses // sentinel for validation; keep last
)

// Terminal reports whether s freezes the entry.
func (s Status) Terminal() bool {
	return s == StatusEscaped || s == StatusAbsorbed || s == StatusRescattered
}

// valid reports whether s is a declared status.
func (s Status) valid() bool {
	return s >= StatusPreCascade && s < numStatuses
}

// String returns a short human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPreCascade:
		return "pre-cascade"
	case StatusInFormationZone:
		return "formation-zone"
	case StatusPropagating:
		return "propagating"
	case StatusEscaped:
		return "escaped"
	case StatusAbsorbed:
		return "absorbed"
	case StatusRescattered:
		return "rescattered"
	default:
		return "unknown"
	}
}

// Particle is one ledger entry.
//
// Momentum and PDG are fixed at append time; Status is the only field the
// ledger mutates afterwards (forward moves only, see Record.SetStatus).
// Position and Time record where the entry was created: the production
// vertex for fresh hadrons, the last transport point for rescattered copies.
type Particle struct {
	// PDG is the Monte Carlo particle numbering scheme code.
	PDG int

	// Status is the entry's transport state.
	Status Status

	// Mother is the ledger index of the producing entry, or NoMother.
	Mother int

	// Daughters lists indices of entries this one produced. Maintained by
	// Record.Append; order is append order.
	Daughters []int

	// Momentum is the 4-momentum in GeV.
	Momentum fmom.PxPyPzE

	// Position is the 3-position in fm, relative to the nuclear center.
	Position r3.Vec

	// Time is the elapsed time in fm/c.
	Time float64
}
