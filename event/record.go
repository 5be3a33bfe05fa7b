// Package event: the append-only particle ledger.
//
// Record is an arena of Particle entries addressed by stable integer
// indices. It supports exactly the collaborator surface the cascade needs:
// append a particle, enumerate entries by status, move a status forward,
// and keep the remnant books. Entries are never removed and never reordered.
//
// Concurrency: a Record belongs to one event and one goroutine; it carries
// no locks. Cross-event parallelism is safe because records share nothing.
package event

import (
	"fmt"

	"go-hep.org/x/hep/fmom"
)

// Record is the event ledger: an append-only arena of particle entries plus
// the nuclear-remnant running totals for the event.
type Record struct {
	particles []Particle
	remnant   Remnant

	// initialRemnant snapshots the remnant at construction time so that
	// event-wide conservation sums have a fixed left-hand side.
	initialRemnant Remnant

	// flaw is the first irrecoverable error posted via Flag, if any.
	flaw error
}

// NewRecord returns an empty ledger owning the given target remnant.
func NewRecord(rem Remnant) *Record {
	return &Record{remnant: rem, initialRemnant: rem}
}

// Len returns the number of entries.
func (r *Record) Len() int { return len(r.particles) }

// At returns a copy of entry i.
func (r *Record) At(i int) (Particle, error) {
	if i < 0 || i >= len(r.particles) {
		return Particle{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(r.particles))
	}
	p := r.particles[i]
	p.Daughters = append([]int(nil), p.Daughters...)

	return p, nil
}

// Append adds a particle entry and returns its index. The mother's daughter
// list is extended when Mother != NoMother. The entry's Daughters field is
// ignored on input (links are owned by the ledger).
func (r *Record) Append(p Particle) (int, error) {
	if !p.Status.valid() {
		return 0, fmt.Errorf("%w: %d", ErrBadStatus, p.Status)
	}
	if p.Mother != NoMother && (p.Mother < 0 || p.Mother >= len(r.particles)) {
		return 0, fmt.Errorf("%w: %d", ErrBadMother, p.Mother)
	}
	p.Daughters = nil
	idx := len(r.particles)
	r.particles = append(r.particles, p)
	if p.Mother != NoMother {
		m := &r.particles[p.Mother]
		m.Daughters = append(m.Daughters, idx)
	}

	return idx, nil
}

// SetStatus moves entry i's status forward. Backward moves and moves out of
// a terminal status return ErrStatusRegression; every legal move is strictly
// increasing, so no status is ever revisited.
func (r *Record) SetStatus(i int, s Status) error {
	if i < 0 || i >= len(r.particles) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(r.particles))
	}
	if !s.valid() {
		return fmt.Errorf("%w: %d", ErrBadStatus, s)
	}
	cur := r.particles[i].Status
	if cur.Terminal() || s <= cur {
		return fmt.Errorf("%w: %v → %v at index %d", ErrStatusRegression, cur, s, i)
	}
	r.particles[i].Status = s

	return nil
}

// WithStatus returns the indices of all entries currently in status s,
// in append order.
func (r *Record) WithStatus(s Status) []int {
	var out []int
	for i := range r.particles {
		if r.particles[i].Status == s {
			out = append(out, i)
		}
	}

	return out
}

// Remnant exposes the live remnant books for the cascade to post to.
func (r *Record) Remnant() *Remnant { return &r.remnant }

// Flag marks the whole event as unusable (first error wins). A flagged
// record must not be interpreted as a physical event.
func (r *Record) Flag(err error) {
	if r.flaw == nil {
		r.flaw = err
	}
}

// Flawed returns the error the event was flagged with, or nil.
func (r *Record) Flawed() error { return r.flaw }

// Clone returns a deep copy of the record, including remnant books and the
// flaw marker. Useful for replaying an initial state under a second seed.
func (r *Record) Clone() *Record {
	cp := &Record{
		particles:      make([]Particle, len(r.particles)),
		remnant:        r.remnant,
		initialRemnant: r.initialRemnant,
		flaw:           r.flaw,
	}
	for i, p := range r.particles {
		p.Daughters = append([]int(nil), p.Daughters...)
		cp.particles[i] = p
	}

	return cp
}

// InitialMomentum sums the 4-momenta of all primary entries (Mother ==
// NoMother) plus the initial remnant: the event-wide left-hand side.
func (r *Record) InitialMomentum() fmom.PxPyPzE {
	sum := r.initialRemnant.Momentum
	for i := range r.particles {
		if r.particles[i].Mother != NoMother {
			continue
		}
		sum = addP4(sum, r.particles[i].Momentum)
	}

	return sum
}

// FinalMomentum sums the 4-momenta of all escaped entries plus the current
// remnant: the event-wide right-hand side. Rescattered and absorbed entries
// are excluded — their momentum lives on in daughters or in the remnant.
func (r *Record) FinalMomentum() fmom.PxPyPzE {
	sum := r.remnant.Momentum
	for i := range r.particles {
		if r.particles[i].Status == StatusEscaped {
			sum = addP4(sum, r.particles[i].Momentum)
		}
	}

	return sum
}

// InitialCharge sums primary charges plus the initial remnant charge.
func (r *Record) InitialCharge() int {
	q := r.initialRemnant.Charge
	for i := range r.particles {
		if r.particles[i].Mother == NoMother {
			q += Charge(r.particles[i].PDG)
		}
	}

	return q
}

// FinalCharge sums escaped charges plus the current remnant charge.
func (r *Record) FinalCharge() int {
	q := r.remnant.Charge
	for i := range r.particles {
		if r.particles[i].Status == StatusEscaped {
			q += Charge(r.particles[i].PDG)
		}
	}

	return q
}

// addP4 is componentwise 4-vector addition.
func addP4(a, b fmom.PxPyPzE) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(a.Px()+b.Px(), a.Py()+b.Py(), a.Pz()+b.Pz(), a.E()+b.E())
}
