// Package cascade: the transport subject, per-hadron transient state and
// sentinel errors.
package cascade

import (
	"errors"

	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hadrosim/event"
)

// Sentinel errors for driver construction and transport.
var (
	// ErrNilNucleus indicates a nil nucleus at construction.
	ErrNilNucleus = errors.New("cascade: nucleus is nil")

	// ErrNilTable indicates a nil cross-section table at construction.
	ErrNilTable = errors.New("cascade: cross-section table is nil")

	// ErrNilRecord indicates a nil event record passed to Run.
	ErrNilRecord = errors.New("cascade: event record is nil")

	// ErrFlawedRecord indicates a record already flagged as unusable.
	ErrFlawedRecord = errors.New("cascade: event record is flagged as flawed")

	// ErrBadStepBudget indicates a non-positive step budget.
	ErrBadStepBudget = errors.New("cascade: step budget must be positive")

	// ErrBadRetryBudget indicates a non-positive retry budget.
	ErrBadRetryBudget = errors.New("cascade: retry budget must be positive")

	// ErrBadFormationTime indicates a negative or non-finite formation time.
	ErrBadFormationTime = errors.New("cascade: formation time must be non-negative and finite")

	// ErrBadFormationScale indicates a negative or non-finite formation scale.
	ErrBadFormationScale = errors.New("cascade: formation scale must be non-negative and finite")

	// ErrBadMedium indicates a medium reporting a non-physical density at
	// construction time.
	ErrBadMedium = errors.New("cascade: medium reports non-physical density")

	// ErrPhaseSpaceExhausted indicates that an interaction outcome could not
	// be sampled within the retry budget; the event is flagged and abandoned.
	ErrPhaseSpaceExhausted = errors.New("cascade: phase space exhausted sampling an outcome")

	// errPhaseSpace is the internal per-attempt rejection consumed by the
	// retry loops; it never escapes the driver.
	errPhaseSpace = errors.New("cascade: insufficient invariant mass")
)

// Hadron is the transport subject: the working copy of a ledger entry while
// it travels through the medium. The ledger entry's momentum stays fixed at
// its production value; interaction outcomes update the working copy, and
// final kinematics reach the ledger as a fresh entry when the hadron
// terminates (see Driver).
type Hadron struct {
	// PDG is the current species (charge exchange may change it in flight).
	PDG int

	// Momentum is the current 4-momentum in GeV.
	Momentum fmom.PxPyPzE

	// Position is the current 3-position in fm.
	Position r3.Vec

	// Time is the elapsed time in fm/c.
	Time float64
}

// kineticEnergy returns E − m for the hadron's current species.
func (h *Hadron) kineticEnergy() float64 {
	m, _ := event.Mass(h.PDG)
	ke := h.Momentum.E() - m
	if ke < 0 {
		return 0 // FP guard for hadrons at rest
	}

	return ke
}

// state is the per-hadron transient bookkeeping owned by the driver for the
// duration of one transport: never shared, never persisted.
type state struct {
	path     float64 // cumulative path length traveled, fm
	steps    int     // step counter against the budget
	scatters int     // elastic/charge-exchange interactions so far
}
