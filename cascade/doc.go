// Package cascade drives intranuclear hadron transport: the formation-zone /
// step / fate loop that takes every freshly produced hadron in an event
// ledger to a terminal status, recursing on the secondaries it spawns.
//
// 🚀 The state machine (one hadron):
//
//	PreCascade      ──(out-of-scope species)──▶ Escaped (pass-through, zero draws)
//	PreCascade      ──(formation length L)───▶ InFormationZone
//	InFormationZone ──(traveled ≥ L)─────────▶ Propagating
//	InFormationZone ──(exits nucleus)────────▶ Escaped
//	Propagating     ──(step leaves nucleus)──▶ Escaped
//	Propagating     ──(step budget spent)────▶ Escaped (fail-safe)
//	Propagating     ──(interaction)──────────▶ elastic / charge-exchange (keep propagating)
//	                                           inelastic (secondaries, Rescattered)
//	                                           absorption (remnant, Absorbed)
//
// Secondaries join a FIFO work queue rather than the call stack, so heavily
// showering events cannot exhaust recursion depth. A hadron fully resolves
// before its secondaries are processed.
//
// ✨ Determinism:
//
//	One *rand.Rand stream drives one event; draws happen in a fixed,
//	documented order (step distance, fate, then per-fate draws). Re-running
//	the same initial ledger with the same stream reproduces every transport
//	history bit-for-bit. Independent per-event streams are derived from a
//	base seed with a SplitMix64 mix (see rng.go), which makes cross-event
//	parallelism safe: events share only the read-only Nucleus and Table.
//
// Failure semantics: outcomes that would violate kinematic conservation are
// resampled up to a bounded retry count; exhausting it flags the whole
// event (ErrPhaseSpaceExhausted) and abandons it — never a silently
// inconsistent ledger. Step budgets bound the work per hadron in place of a
// cancellation mechanism.
//
// ⚙️ Usage:
//
//	nuc, _ := nucleus.New(12, 6)
//	drv, err := cascade.New(nuc, xsec.DefaultTable(),
//	    cascade.WithSeed(42),
//	    cascade.WithFormationTime(0.342),
//	)
//	if err != nil { ... }
//	err = drv.Run(rec, 0) // event 0's derived stream
//
// Units: GeV, fm, fm/c throughout.
package cascade
