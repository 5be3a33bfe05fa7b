// Package nucleus: the Nucleus type, its profiles, options and constructor.
package nucleus

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for nucleus construction.
var (
	// ErrBadMassNumber indicates A < 1.
	ErrBadMassNumber = errors.New("nucleus: mass number must be ≥ 1")

	// ErrBadCharge indicates Z outside [0, A].
	ErrBadCharge = errors.New("nucleus: charge must satisfy 0 ≤ Z ≤ A")

	// ErrBadRadiusScale indicates a non-positive or non-finite radius scale.
	ErrBadRadiusScale = errors.New("nucleus: radius scale must be positive and finite")

	// ErrBadDiffuseness indicates a non-positive or non-finite surface diffuseness.
	ErrBadDiffuseness = errors.New("nucleus: diffuseness must be positive and finite")

	// ErrUnknownProfile indicates a Profile value outside the declared set.
	ErrUnknownProfile = errors.New("nucleus: unknown density profile")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultRadiusScale is r0 in R = r0·A^(1/3), in fm. 1.1 fm puts
	// carbon-12 at ≈ 2.5 fm.
	DefaultRadiusScale = 1.1

	// DefaultDiffuseness is the Woods–Saxon surface thickness a, in fm.
	DefaultDiffuseness = 0.54

	// DefaultProfile is the density profile used when none is chosen.
	DefaultProfile = ProfileUniform

	// surfaceExtent is how many diffuseness lengths past the half-density
	// radius the Woods–Saxon medium extends before the hard cutoff;
	// exp(−7) ≈ 9e−4 of the central density is truncated.
	surfaceExtent = 7.0
)

// Profile selects the radial density parameterization.
type Profile int

const (
	// ProfileUniform: constant density inside a hard sphere.
	ProfileUniform Profile = iota

	// ProfileWoodsSaxon: Fermi-function density with a diffuse surface.
	ProfileWoodsSaxon

	numProfiles // sentinel for validation; keep last
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileUniform:
		return "uniform"
	case ProfileWoodsSaxon:
		return "woods-saxon"
	default:
		return "unknown"
	}
}

// Option mutates the construction parameters of New.
type Option func(*config)

type config struct {
	radiusScale float64
	diffuseness float64
	profile     Profile
}

// WithRadiusScale sets r0 in R = r0·A^(1/3), in fm.
func WithRadiusScale(r0 float64) Option {
	return func(c *config) { c.radiusScale = r0 }
}

// WithDiffuseness sets the Woods–Saxon surface thickness a, in fm.
// Ignored by ProfileUniform.
func WithDiffuseness(a float64) Option {
	return func(c *config) { c.diffuseness = a }
}

// WithProfile selects the density profile.
func WithProfile(p Profile) Option {
	return func(c *config) { c.profile = p }
}

// Nucleus is an immutable description of one target nucleus: mass number,
// charge, radius and matter-density profile. Construct with New; all
// parameter validation happens there (configuration errors are fatal at
// construction time, never at transport time).
type Nucleus struct {
	a, z int

	profile     Profile
	halfRadius  float64 // r0·A^(1/3), fm
	radius      float64 // hard outer cutoff, fm
	diffuseness float64 // fm
	rho0        float64 // central density, fm⁻³
}

// New builds a nucleus for mass number a and charge z.
//
// Errors: ErrBadMassNumber, ErrBadCharge, ErrBadRadiusScale,
// ErrBadDiffuseness, ErrUnknownProfile.
func New(a, z int, opts ...Option) (*Nucleus, error) {
	if a < 1 {
		return nil, fmt.Errorf("%w: A=%d", ErrBadMassNumber, a)
	}
	if z < 0 || z > a {
		return nil, fmt.Errorf("%w: Z=%d A=%d", ErrBadCharge, z, a)
	}

	cfg := config{
		radiusScale: DefaultRadiusScale,
		diffuseness: DefaultDiffuseness,
		profile:     DefaultProfile,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.radiusScale > 0) || math.IsInf(cfg.radiusScale, 0) {
		return nil, fmt.Errorf("%w: r0=%g", ErrBadRadiusScale, cfg.radiusScale)
	}
	if !(cfg.diffuseness > 0) || math.IsInf(cfg.diffuseness, 0) {
		return nil, fmt.Errorf("%w: a=%g", ErrBadDiffuseness, cfg.diffuseness)
	}
	if cfg.profile < 0 || cfg.profile >= numProfiles {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProfile, cfg.profile)
	}

	n := &Nucleus{
		a:           a,
		z:           z,
		profile:     cfg.profile,
		halfRadius:  cfg.radiusScale * math.Cbrt(float64(a)),
		diffuseness: cfg.diffuseness,
	}

	switch cfg.profile {
	case ProfileUniform:
		n.radius = n.halfRadius
		n.rho0 = 3 * float64(a) / (4 * math.Pi * n.radius * n.radius * n.radius)
	case ProfileWoodsSaxon:
		n.radius = n.halfRadius + surfaceExtent*cfg.diffuseness
		// Normalization from the standard Woods–Saxon volume integral:
		// ∫ρ dV = (4π/3)·R½³·ρ0·(1 + π²a²/R½²).
		r3 := n.halfRadius * n.halfRadius * n.halfRadius
		corr := 1 + math.Pi*math.Pi*cfg.diffuseness*cfg.diffuseness/(n.halfRadius*n.halfRadius)
		n.rho0 = float64(a) / (4 * math.Pi / 3 * r3 * corr)
	}

	return n, nil
}

// A returns the mass number.
func (n *Nucleus) A() int { return n.a }

// Z returns the charge number.
func (n *Nucleus) Z() int { return n.z }

// Profile returns the density profile in use.
func (n *Nucleus) Profile() Profile { return n.profile }

// Radius returns the outer radius in fm: beyond it a hadron is outside the
// medium and Density is exactly zero. Strictly increasing with A for a
// fixed parameter set.
func (n *Nucleus) Radius() float64 { return n.radius }

// Inside reports whether radial distance r is inside the medium.
func (n *Nucleus) Inside(r float64) bool { return r < n.radius }

// Density returns the local matter density at radial distance r, in fm⁻³.
// Non-negative everywhere; exactly zero for r ≥ Radius() (and for negative
// r, which callers never produce from a vector norm).
func (n *Nucleus) Density(r float64) float64 {
	if r < 0 || r >= n.radius {
		return 0
	}
	switch n.profile {
	case ProfileWoodsSaxon:
		return n.rho0 / (1 + math.Exp((r-n.halfRadius)/n.diffuseness))
	default: // ProfileUniform
		return n.rho0
	}
}
