// Package cascade - RNG utilities for reproducible transport.
//
// This file centralizes deterministic random generation for the driver.
//
// Goals:
//   - Determinism: same seed ⇒ identical transport histories across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: per-event substreams derived from the base seed with a
//     SplitMix64-style avalanche mix, so events can be transported in
//     parallel without correlated draws.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. One stream drives one event;
//     never share a *rand.Rand across concurrently transported events.
package cascade

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 multipliers/finalizer (Vigna 2014).
// Small changes in inputs produce large, well-distributed output changes,
// which keeps sibling event streams decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// StreamRNG returns the independent deterministic stream for one event:
// stream i of base seed s is the same on every platform and every run.
// Use distinct stream identifiers for distinct events.
//
// Complexity: O(1).
func StreamRNG(seed int64, stream uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, stream)))
}
