// Package event provides the append-only particle ledger shared by all
// cascade stages, plus the transport statuses, particle-species scope and
// nuclear-remnant bookkeeping that go with it.
//
// 🚀 What is an event Record?
//
//	An arena of particle entries addressed by stable integer indices.
//	Mother/daughter relationships are stored as index links, never as live
//	references, so the particle history stays a clean DAG with no pointer
//	aliasing. Entries are appended, never removed; the only in-place
//	mutation allowed after an append is a forward status move.
//
// ✨ Guarantees:
//
//   - Statuses are monotonic:
//     PreCascade → InFormationZone → Propagating → {Escaped | Absorbed | Rescattered}.
//     A terminal status freezes the entry; regressions return ErrStatusRegression.
//   - A particle's 4-momentum and species are fixed at append time.
//   - Remnant bookkeeping (charge, A, 4-momentum) balances every absorption
//     and nucleon knockout, so event-wide charge and 4-momentum sums close.
//
// ⚙️ Usage:
//
//	rem := event.NewRemnant(12, 6)                 // carbon-12 target
//	rec := event.NewRecord(rem)
//	idx := rec.Append(event.Particle{
//	    PDG:      event.PDGPiPlus,
//	    Status:   event.StatusPreCascade,
//	    Mother:   event.NoMother,
//	    Momentum: fmom.NewPxPyPzE(0, 0, 0.271, 0.305),
//	})
//	_ = rec.SetStatus(idx, event.StatusPropagating)
//
// Units: momenta and energies in GeV, positions in fm, times in fm/c.
package event
