// Package nucleus models the nuclear medium the cascade transports through:
// the nuclear radius as a function of mass number, and the local matter
// density as a function of radial distance.
//
// 🚀 What does it answer?
//
//	Two questions, nothing more:
//	  • Radius()  — beyond which radial distance is a hadron outside?
//	  • Density(r) — how much nuclear matter sits at distance r?
//
// Profiles:
//
//   - ProfileUniform (default) — constant density inside a hard sphere of
//     radius r0·A^(1/3), normalized so ∫ρ dV = A.
//   - ProfileWoodsSaxon — ρ0 / (1 + exp((r−R½)/a)) with half-density radius
//     R½ = r0·A^(1/3) and surface diffuseness a. Radius() extends to
//     R½ + 7a, where the profile has fallen below ~1e−3·ρ0.
//
// Outside policy (documented, consistent for both profiles): Density(r)
// returns exactly 0 for every r ≥ Radius(). The Woods–Saxon tail is
// truncated there; the truncated fraction is below 0.1% of A.
//
// Determinism & concurrency: a Nucleus is immutable after New and safe for
// concurrent reads from any number of transported events.
//
// ⚙️ Usage:
//
//	nuc, err := nucleus.New(12, 6)                       // carbon-12, uniform
//	nuc, err = nucleus.New(56, 26,
//	    nucleus.WithProfile(nucleus.ProfileWoodsSaxon),
//	    nucleus.WithRadiusScale(1.2),
//	)
//
// Units: fm for lengths, fm⁻³ for densities.
package nucleus
