// Package cascade: functional configuration for the transport driver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors; validation happens once, inside New.
//
// Design goals:
//   - Deterministic behavior: no global state, no time-based randomness.
//   - Safe by construction: configuration errors are fatal at New time,
//     never at transport time.
package cascade

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hadrosim/xsec"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStepBudget bounds the number of transport steps per hadron.
	// Exhausting it terminates the hadron as Escaped (fail-safe).
	DefaultStepBudget = 10000

	// DefaultRetryBudget bounds outcome resampling when a sampled final
	// state violates kinematic conservation.
	DefaultRetryBudget = 12

	// DefaultFormationTime is c·t0 in fm: the proper formation time scale.
	DefaultFormationTime = 0.342

	// DefaultFormationScale is the dimensionless multiplier applied on top
	// of the boosted formation time.
	DefaultFormationScale = 1.0

	// DefaultSeed is the base seed used when callers pass seed==0; stable,
	// arbitrary, keeps zero-value runs reproducible.
	DefaultSeed int64 = 1
)

// FateHook observes the interaction channel selected for a hadron at one
// transport step. idx is the hadron's original ledger index. Hooks run
// synchronously inside the transport loop; they must not mutate the record.
type FateHook func(idx int, fate xsec.Channel)

// Options carries the gathered driver configuration. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	stepBudget     int
	retryBudget    int
	formationTime  float64
	formationScale float64
	transparent    bool
	seed           int64
	logger         zerolog.Logger
	fateHook       FateHook
}

// Option mutates internal options. Applied in order by New.
type Option func(*Options)

// WithStepBudget caps transport steps per hadron. Must be positive.
func WithStepBudget(n int) Option {
	return func(o *Options) { o.stepBudget = n }
}

// WithRetryBudget caps outcome resampling attempts. Must be positive.
func WithRetryBudget(n int) Option {
	return func(o *Options) { o.retryBudget = n }
}

// WithFormationTime sets c·t0 in fm. Zero disables the formation zone
// entirely (every hadron is Propagating immediately).
func WithFormationTime(ct0 float64) Option {
	return func(o *Options) { o.formationTime = ct0 }
}

// WithFormationScale sets the dimensionless formation-length multiplier.
func WithFormationScale(k float64) Option {
	return func(o *Options) { o.formationScale = k }
}

// WithTransparentNucleus disables all rescattering: every eligible hadron
// is reported as immediately Escaped with unchanged kinematics.
func WithTransparentNucleus() Option {
	return func(o *Options) { o.transparent = true }
}

// WithSeed sets the base seed for derived per-event streams.
// Policy: seed==0 ⇒ DefaultSeed (same as the zero value).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLogger attaches a structured logger for per-event transport
// diagnostics. Default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithFateHook attaches an observer for selected fates (tallies, histograms).
func WithFateHook(h FateHook) Option {
	return func(o *Options) { o.fateHook = h }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		stepBudget:     DefaultStepBudget,
		retryBudget:    DefaultRetryBudget,
		formationTime:  DefaultFormationTime,
		formationScale: DefaultFormationScale,
		seed:           DefaultSeed,
		logger:         zerolog.Nop(),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = DefaultSeed
	}

	return o
}
