// Package xsec: channel enumeration and sentinel errors.
package xsec

import "errors"

// Sentinel errors for table construction and mean-free-path evaluation.
var (
	// ErrNilTable indicates a nil *Table was passed.
	ErrNilTable = errors.New("xsec: table is nil")

	// ErrUnknownChannel indicates a Channel value outside the declared set.
	ErrUnknownChannel = errors.New("xsec: unknown channel")

	// ErrEmptyEntry indicates a table entry with no species or no points.
	ErrEmptyEntry = errors.New("xsec: table entry needs at least one species and one point")

	// ErrUnsortedPoints indicates control points not strictly increasing in
	// kinetic energy.
	ErrUnsortedPoints = errors.New("xsec: control points must be strictly increasing in KE")

	// ErrNegativeSigma indicates a negative or non-finite cross section.
	ErrNegativeSigma = errors.New("xsec: cross sections must be non-negative and finite")

	// ErrBadScale indicates a negative or non-finite scale factor.
	ErrBadScale = errors.New("xsec: scale factor must be non-negative and finite")

	// ErrNegativeDensity indicates a negative or non-finite local density.
	ErrNegativeDensity = errors.New("xsec: density must be non-negative and finite")

	// ErrBadKineticEnergy indicates a negative or non-finite kinetic energy.
	ErrBadKineticEnergy = errors.New("xsec: kinetic energy must be non-negative and finite")

	// ErrNoChannels indicates fate selection over an empty channel set.
	ErrNoChannels = errors.New("xsec: no channels to select a fate from")

	// ErrBadDraw indicates a uniform draw outside [0,1).
	ErrBadDraw = errors.New("xsec: uniform draw must lie in [0,1)")

	// ErrNoInteraction indicates fate selection with an infinite total mean
	// free path: the stepper should have treated this as free streaming.
	ErrNoInteraction = errors.New("xsec: total mean free path is infinite")
)

// Channel is one interaction channel. The declaration order is the fixed
// enumeration order used everywhere: mean-free-path listings, fate
// partitioning, and hence the meaning of each random draw.
type Channel int

const (
	// Elastic: the hadron survives with a new direction.
	Elastic Channel = iota

	// Inelastic: the hadron is replaced by secondary hadrons.
	Inelastic

	// Absorption: the hadron is absorbed into the nucleus.
	Absorption

	// ChargeExchange: the hadron swaps charge with a nucleon.
	ChargeExchange

	numChannels // sentinel for validation; keep last
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Elastic:
		return "elastic"
	case Inelastic:
		return "inelastic"
	case Absorption:
		return "absorption"
	case ChargeExchange:
		return "charge-exchange"
	default:
		return "unknown"
	}
}

// valid reports whether c is a declared channel.
func (c Channel) valid() bool { return c >= Elastic && c < numChannels }

// MbToFm2 converts millibarn to fm²: 1 mb = 0.1 fm².
const MbToFm2 = 0.1

// PathLen pairs a channel with its mean free path in fm.
type PathLen struct {
	Channel Channel
	Lambda  float64
}
