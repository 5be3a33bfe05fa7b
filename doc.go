// Package hadrosim is an in-memory Monte Carlo engine for intranuclear
// hadron transport: it takes hadrons produced inside an atomic nucleus
// and rescatters them through nuclear matter until they escape or are
// absorbed.
//
// 🚀 What is hadrosim?
//
//	A deterministic, seed-reproducible cascade library that brings together:
//		• Event ledger: append-only particle arena with mother/daughter links
//		• Nuclear medium: radius & density profiles (uniform ball, Woods–Saxon)
//		• Cross sections: per-channel tables → mean free paths → fate selection
//		• Cascade driver: formation-zone / step / fate loop with a work queue
//
// ✨ Why choose hadrosim?
//
//   - Bit-reproducible – one RNG stream per event, SplitMix64-derived substreams
//   - Rock-solid guarantees – monotonic particle statuses, bounded step/retry
//     budgets, event-wide charge & 4-momentum conservation
//   - Extensible – swappable density profiles and cross-section tables,
//     fate hooks for custom tallies
//
// Under the hood, everything is organized under four subpackages:
//
//	event/   — particle records, transport statuses, remnant bookkeeping
//	nucleus/ — nuclear radius and matter-density models
//	xsec/    — interaction channels, cross-section tables, fate selection
//	cascade/ — formation zone, stepper, and the transport driver
//
// Quick ASCII picture of one hadron's life:
//
//	produced ──▶ formation zone ──▶ step · step · step ──▶ fate
//	                │                      │                ├── elastic / charge-exchange (keep going)
//	                └── exits nucleus      └── exits        ├── inelastic (secondaries re-enter the queue)
//	                    while forming          nucleus      └── absorption (remnant bookkeeping)
//
// Dive into each package's doc.go for contracts, invariants and edge-case
// policies, and into cmd/hadrosim for a runnable sample-shot driver.
package hadrosim
