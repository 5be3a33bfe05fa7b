// Package xsec turns hadron–nucleon cross sections into the two decisions
// the cascade needs per transport step: how far a hadron travels between
// interactions (mean free paths), and which interaction channel fires when
// one does (fate selection).
//
// 🚀 The pipeline:
//
//	Table (σ per species/channel vs kinetic energy, mb)
//	  → MeanFreePaths (λ_channel = 1/(σ·ρ), fm)
//	  → Total (1/λ_total = Σ 1/λ_channel)
//	  → SelectFate (partition [0,1) by λ_total/λ_channel)
//
// ✨ Guarantees:
//
//   - Channels are always enumerated in the declared order
//     (Elastic, Inelastic, Absorption, ChargeExchange): fate selection is
//     bit-reproducible for a fixed random stream.
//   - Channel probabilities λ_total/λ_channel sum to exactly 1 by the
//     harmonic-sum construction; the no-interaction branch is decided by the
//     stepper's distance sampling, never here.
//   - λ_channel is strictly positive whenever density and σ are positive;
//     zero density yields +Inf mean free paths (the caller treats that as
//     free streaming).
//   - Species outside the cascade scope have an empty channel set and are
//     transparent.
//
// The built-in DefaultTable is a coarse piecewise-linear parameterization
// good enough for transport shape studies; real analyses inject their own
// Table via NewTable, which is the pluggable "cross-section table source"
// of the configuration surface. Table values are read-only after
// construction and safe for concurrent use.
package xsec
