// Package xsec: cross-section tables.
//
// A Table maps (species, channel) to a piecewise-linear cross section as a
// function of kinetic energy. Construction validates everything up front;
// lookups never fail for in-scope species.
package xsec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hadrosim/event"
)

// Point is one control point of a piecewise-linear cross section:
// kinetic energy in GeV, cross section in mb.
type Point struct {
	KE    float64
	Sigma float64
}

// Entry declares the cross section of one channel for a set of species.
type Entry struct {
	// Species lists the PDG codes this entry applies to.
	Species []int

	// Channel is the interaction channel.
	Channel Channel

	// Points are control points, strictly increasing in KE. Lookups clamp
	// to the first/last point outside the covered range.
	Points []Point
}

// Table is a read-only per-species, per-channel cross-section source.
// Species with no entries are outside the cascade scope and report an empty
// channel set.
type Table struct {
	sigma map[int]map[Channel][]Point
}

// NewTable validates entries and builds a table.
//
// Errors: ErrEmptyEntry, ErrUnknownChannel, ErrUnsortedPoints,
// ErrNegativeSigma.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{sigma: make(map[int]map[Channel][]Point)}
	for i, e := range entries {
		if len(e.Species) == 0 || len(e.Points) == 0 {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyEntry, i)
		}
		if !e.Channel.valid() {
			return nil, fmt.Errorf("%w: entry %d channel %d", ErrUnknownChannel, i, e.Channel)
		}
		for j, p := range e.Points {
			if math.IsNaN(p.Sigma) || math.IsInf(p.Sigma, 0) || p.Sigma < 0 {
				return nil, fmt.Errorf("%w: entry %d point %d σ=%g", ErrNegativeSigma, i, j, p.Sigma)
			}
			if j > 0 && p.KE <= e.Points[j-1].KE {
				return nil, fmt.Errorf("%w: entry %d point %d", ErrUnsortedPoints, i, j)
			}
		}
		pts := append([]Point(nil), e.Points...)
		for _, pdg := range e.Species {
			if t.sigma[pdg] == nil {
				t.sigma[pdg] = make(map[Channel][]Point)
			}
			t.sigma[pdg][e.Channel] = pts
		}
	}

	return t, nil
}

// Scaled returns a copy of the table with every cross section multiplied by
// factor. Factor 0 makes the medium fully transparent.
//
// Errors: ErrBadScale for negative or non-finite factors.
func (t *Table) Scaled(factor float64) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadScale, factor)
	}
	cp := &Table{sigma: make(map[int]map[Channel][]Point, len(t.sigma))}
	for pdg, chans := range t.sigma {
		cp.sigma[pdg] = make(map[Channel][]Point, len(chans))
		for ch, pts := range chans {
			scaled := make([]Point, len(pts))
			for i, p := range pts {
				scaled[i] = Point{KE: p.KE, Sigma: p.Sigma * factor}
			}
			cp.sigma[pdg][ch] = scaled
		}
	}

	return cp, nil
}

// Channels returns the channels the table defines for pdg, in the fixed
// enumeration order. Nil for species outside the cascade scope.
func (t *Table) Channels(pdg int) []Channel {
	chans := t.sigma[pdg]
	if len(chans) == 0 {
		return nil
	}
	out := make([]Channel, 0, len(chans))
	for c := Elastic; c < numChannels; c++ {
		if _, ok := chans[c]; ok {
			out = append(out, c)
		}
	}

	return out
}

// Sigma returns the cross section in mb for (pdg, channel) at kinetic
// energy ke (GeV), interpolating linearly between control points and
// clamping outside the covered range. Zero for unknown species/channels.
func (t *Table) Sigma(pdg int, ch Channel, ke float64) float64 {
	pts := t.sigma[pdg][ch]
	if len(pts) == 0 {
		return 0
	}
	if ke <= pts[0].KE {
		return pts[0].Sigma
	}
	last := len(pts) - 1
	if ke >= pts[last].KE {
		return pts[last].Sigma
	}
	// Linear scan: tables are a handful of points, binary search would be noise.
	for i := 1; i <= last; i++ {
		if ke <= pts[i].KE {
			f := (ke - pts[i-1].KE) / (pts[i].KE - pts[i-1].KE)
			return pts[i-1].Sigma + f*(pts[i].Sigma-pts[i-1].Sigma)
		}
	}

	return pts[last].Sigma // unreachable
}

// DefaultTable returns the built-in coarse parameterization: charged and
// neutral pions carry all four channels with a broad Δ-resonance bump;
// nucleons carry elastic and inelastic only.
func DefaultTable() *Table {
	pions := []int{event.PDGPiPlus, event.PDGPiMinus, event.PDGPiZero}
	nucleons := []int{event.PDGProton, event.PDGNeutron}

	t, err := NewTable([]Entry{
		{Species: pions, Channel: Elastic, Points: []Point{
			{0.00, 5}, {0.08, 15}, {0.165, 20}, {0.30, 12}, {0.50, 8}, {1.0, 6}, {10, 6},
		}},
		{Species: pions, Channel: Inelastic, Points: []Point{
			{0.00, 1}, {0.08, 8}, {0.165, 15}, {0.30, 12}, {0.50, 10}, {1.0, 12}, {10, 12},
		}},
		{Species: pions, Channel: Absorption, Points: []Point{
			{0.00, 8}, {0.08, 12}, {0.165, 10}, {0.30, 5}, {0.50, 2}, {1.0, 1}, {10, 1},
		}},
		{Species: pions, Channel: ChargeExchange, Points: []Point{
			{0.00, 3}, {0.08, 8}, {0.165, 8}, {0.30, 5}, {0.50, 3}, {1.0, 2}, {10, 2},
		}},
		{Species: nucleons, Channel: Elastic, Points: []Point{
			{0.00, 25}, {0.10, 20}, {0.30, 18}, {1.0, 15}, {10, 15},
		}},
		{Species: nucleons, Channel: Inelastic, Points: []Point{
			{0.00, 0.5}, {0.29, 1}, {0.60, 8}, {1.0, 12}, {10, 15},
		}},
	})
	if err != nil {
		panic(err) // the built-in table is checked by tests; unreachable
	}

	return t
}
