package event_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/fmom"

	"github.com/katalvlaran/hadrosim/event"
)

// piPlus returns a π+ entry with the given longitudinal momentum.
func piPlus(pz float64, mother int) event.Particle {
	return event.Particle{
		PDG:      event.PDGPiPlus,
		Status:   event.StatusPreCascade,
		Mother:   mother,
		Momentum: fmom.NewPxPyPzE(0, 0, pz, math.Hypot(pz, event.MassPiPlus)),
	}
}

// TestRecord_AppendLinksDaughters verifies that Append registers the new
// index on the mother's daughter list and returns stable indices.
func TestRecord_AppendLinksDaughters(t *testing.T) {
	rec := event.NewRecord(event.NewRemnant(12, 6))

	i0, err := rec.Append(piPlus(0.3, event.NoMother))
	require.NoError(t, err)
	assert.Equal(t, 0, i0)

	i1, err := rec.Append(piPlus(0.1, i0))
	require.NoError(t, err)
	assert.Equal(t, 1, i1)

	mom, err := rec.At(i0)
	require.NoError(t, err)
	assert.Equal(t, []int{i1}, mom.Daughters, "mother must link its daughter")

	dau, err := rec.At(i1)
	require.NoError(t, err)
	assert.Equal(t, i0, dau.Mother)
}

// TestRecord_AppendRejectsBadMother verifies mother-index validation.
func TestRecord_AppendRejectsBadMother(t *testing.T) {
	rec := event.NewRecord(event.NewRemnant(12, 6))

	_, err := rec.Append(piPlus(0.3, 5))
	assert.ErrorIs(t, err, event.ErrBadMother)

	_, err = rec.Append(piPlus(0.3, -2))
	assert.ErrorIs(t, err, event.ErrBadMother)
}

// TestRecord_StatusMonotonic verifies that statuses only move forward and
// that terminal statuses freeze the entry.
func TestRecord_StatusMonotonic(t *testing.T) {
	rec := event.NewRecord(event.NewRemnant(12, 6))
	i, err := rec.Append(piPlus(0.3, event.NoMother))
	require.NoError(t, err)

	require.NoError(t, rec.SetStatus(i, event.StatusInFormationZone))
	require.NoError(t, rec.SetStatus(i, event.StatusPropagating))

	// Backward move must fail.
	err = rec.SetStatus(i, event.StatusPreCascade)
	assert.ErrorIs(t, err, event.ErrStatusRegression)

	// Same-status move must fail too: every legal move is strictly forward.
	err = rec.SetStatus(i, event.StatusPropagating)
	assert.ErrorIs(t, err, event.ErrStatusRegression)

	// Terminal freezes.
	require.NoError(t, rec.SetStatus(i, event.StatusEscaped))
	err = rec.SetStatus(i, event.StatusAbsorbed)
	assert.ErrorIs(t, err, event.ErrStatusRegression)
}

// TestRecord_SkippingIntermediateStatusIsLegal verifies the pass-through
// path PreCascade → Escaped used for transparent and out-of-scope hadrons.
func TestRecord_SkippingIntermediateStatusIsLegal(t *testing.T) {
	rec := event.NewRecord(event.NewRemnant(12, 6))
	i, err := rec.Append(piPlus(0.3, event.NoMother))
	require.NoError(t, err)

	assert.NoError(t, rec.SetStatus(i, event.StatusEscaped))
}

// TestRecord_WithStatus verifies status enumeration preserves append order.
func TestRecord_WithStatus(t *testing.T) {
	rec := event.NewRecord(event.NewRemnant(12, 6))
	i0, _ := rec.Append(piPlus(0.1, event.NoMother))
	i1, _ := rec.Append(piPlus(0.2, event.NoMother))
	i2, _ := rec.Append(piPlus(0.3, event.NoMother))
	require.NoError(t, rec.SetStatus(i1, event.StatusEscaped))

	assert.Equal(t, []int{i0, i2}, rec.WithStatus(event.StatusPreCascade))
	assert.Equal(t, []int{i1}, rec.WithStatus(event.StatusEscaped))
}

// TestRecord_ConservationClosesOnAbsorb verifies that charge and 4-momentum
// sums close when a primary is absorbed into the remnant.
func TestRecord_ConservationClosesOnAbsorb(t *testing.T) {
	rec := event.NewRecord(event.NewRemnant(12, 6))
	i, err := rec.Append(piPlus(0.271, event.NoMother))
	require.NoError(t, err)

	p, err := rec.At(i)
	require.NoError(t, err)
	rec.Remnant().Absorb(p.Momentum, event.Charge(p.PDG))
	require.NoError(t, rec.SetStatus(i, event.StatusAbsorbed))

	ini, fin := rec.InitialMomentum(), rec.FinalMomentum()
	assert.InDelta(t, ini.E(), fin.E(), 1e-12)
	assert.InDelta(t, ini.Pz(), fin.Pz(), 1e-12)
	assert.Equal(t, rec.InitialCharge(), rec.FinalCharge())
}

// TestRecord_CloneIsDeep verifies that mutating a clone leaves the original
// untouched.
func TestRecord_CloneIsDeep(t *testing.T) {
	rec := event.NewRecord(event.NewRemnant(12, 6))
	i, _ := rec.Append(piPlus(0.3, event.NoMother))

	cp := rec.Clone()
	require.NoError(t, cp.SetStatus(i, event.StatusEscaped))
	_, err := cp.Append(piPlus(0.1, i))
	require.NoError(t, err)

	orig, err := rec.At(i)
	require.NoError(t, err)
	assert.Equal(t, event.StatusPreCascade, orig.Status)
	assert.Empty(t, orig.Daughters)
	assert.Equal(t, 1, rec.Len())
	assert.Equal(t, 2, cp.Len())
}

// TestRecord_FlagFirstErrorWins verifies flaw semantics.
func TestRecord_FlagFirstErrorWins(t *testing.T) {
	rec := event.NewRecord(event.NewRemnant(12, 6))
	assert.NoError(t, rec.Flawed())

	rec.Flag(event.ErrRemnantExhausted)
	rec.Flag(event.ErrBadStatus)
	assert.ErrorIs(t, rec.Flawed(), event.ErrRemnantExhausted)
}

// TestRemnant_BindNucleon verifies nucleon bookkeeping and exhaustion.
func TestRemnant_BindNucleon(t *testing.T) {
	rm := event.NewRemnant(2, 1)

	require.NoError(t, rm.BindNucleon(event.PDGProton))
	assert.Equal(t, 1, rm.A)
	assert.Equal(t, 0, rm.Charge)

	require.NoError(t, rm.BindNucleon(event.PDGNeutron))
	assert.Equal(t, 0, rm.A)

	assert.ErrorIs(t, rm.BindNucleon(event.PDGNeutron), event.ErrRemnantExhausted)
	assert.ErrorIs(t, func() error { rm2 := event.NewRemnant(4, 2); return rm2.BindNucleon(event.PDGPiPlus) }(), event.ErrNotNucleon)
}
