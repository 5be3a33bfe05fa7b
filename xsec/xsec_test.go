package xsec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hadrosim/event"
	"github.com/katalvlaran/hadrosim/xsec"
)

// rho0 is a typical central nuclear density for the checks below, fm⁻³.
const rho0 = 0.17

// TestNewTable_Validation verifies that malformed entries are rejected with
// the right sentinels.
func TestNewTable_Validation(t *testing.T) {
	_, err := xsec.NewTable([]xsec.Entry{{Channel: xsec.Elastic}})
	assert.ErrorIs(t, err, xsec.ErrEmptyEntry)

	_, err = xsec.NewTable([]xsec.Entry{{
		Species: []int{event.PDGPiPlus}, Channel: xsec.Channel(42),
		Points: []xsec.Point{{0, 1}},
	}})
	assert.ErrorIs(t, err, xsec.ErrUnknownChannel)

	_, err = xsec.NewTable([]xsec.Entry{{
		Species: []int{event.PDGPiPlus}, Channel: xsec.Elastic,
		Points: []xsec.Point{{0.2, 1}, {0.1, 2}},
	}})
	assert.ErrorIs(t, err, xsec.ErrUnsortedPoints)

	_, err = xsec.NewTable([]xsec.Entry{{
		Species: []int{event.PDGPiPlus}, Channel: xsec.Elastic,
		Points: []xsec.Point{{0, -1}},
	}})
	assert.ErrorIs(t, err, xsec.ErrNegativeSigma)
}

// TestTable_SigmaInterpolation verifies clamping and linear interpolation.
func TestTable_SigmaInterpolation(t *testing.T) {
	tab, err := xsec.NewTable([]xsec.Entry{{
		Species: []int{event.PDGPiPlus}, Channel: xsec.Elastic,
		Points: []xsec.Point{{0.1, 10}, {0.3, 30}},
	}})
	require.NoError(t, err)

	assert.Equal(t, 10.0, tab.Sigma(event.PDGPiPlus, xsec.Elastic, 0.0), "clamp below")
	assert.Equal(t, 30.0, tab.Sigma(event.PDGPiPlus, xsec.Elastic, 5.0), "clamp above")
	assert.InDelta(t, 20.0, tab.Sigma(event.PDGPiPlus, xsec.Elastic, 0.2), 1e-12, "midpoint")
	assert.Zero(t, tab.Sigma(event.PDGProton, xsec.Elastic, 0.2), "unknown species")
}

// TestTable_ChannelsFixedOrder verifies the enumeration order contract for
// the built-in table.
func TestTable_ChannelsFixedOrder(t *testing.T) {
	tab := xsec.DefaultTable()

	assert.Equal(t,
		[]xsec.Channel{xsec.Elastic, xsec.Inelastic, xsec.Absorption, xsec.ChargeExchange},
		tab.Channels(event.PDGPiPlus))
	assert.Equal(t,
		[]xsec.Channel{xsec.Elastic, xsec.Inelastic},
		tab.Channels(event.PDGNeutron), "nucleons support a subset")
	assert.Nil(t, tab.Channels(event.PDGElectron), "out-of-scope species have no channels")
}

// TestMeanFreePaths_Contracts verifies positivity, the zero-density edge
// case and the transparent out-of-scope species.
func TestMeanFreePaths_Contracts(t *testing.T) {
	tab := xsec.DefaultTable()

	paths, err := xsec.MeanFreePaths(tab, event.PDGPiPlus, 0.165, rho0)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	for _, p := range paths {
		assert.Greater(t, p.Lambda, 0.0, "λ strictly positive at positive density")
		assert.False(t, math.IsInf(p.Lambda, 1))
	}

	// Zero density: infinite mean free paths, infinite total.
	paths, err = xsec.MeanFreePaths(tab, event.PDGPiPlus, 0.165, 0)
	require.NoError(t, err)
	for _, p := range paths {
		assert.True(t, math.IsInf(p.Lambda, 1))
	}
	assert.True(t, math.IsInf(xsec.Total(paths), 1))

	// Out-of-scope species: empty set, no error.
	paths, err = xsec.MeanFreePaths(tab, event.PDGMuon, 0.165, rho0)
	require.NoError(t, err)
	assert.Nil(t, paths)

	// Contract violations.
	_, err = xsec.MeanFreePaths(nil, event.PDGPiPlus, 0.165, rho0)
	assert.ErrorIs(t, err, xsec.ErrNilTable)
	_, err = xsec.MeanFreePaths(tab, event.PDGPiPlus, -0.1, rho0)
	assert.ErrorIs(t, err, xsec.ErrBadKineticEnergy)
	_, err = xsec.MeanFreePaths(tab, event.PDGPiPlus, 0.165, -1)
	assert.ErrorIs(t, err, xsec.ErrNegativeDensity)
}

// TestTotal_HarmonicSum verifies 1/λ_total = Σ 1/λ_channel.
func TestTotal_HarmonicSum(t *testing.T) {
	paths := []xsec.PathLen{
		{Channel: xsec.Elastic, Lambda: 2},
		{Channel: xsec.Inelastic, Lambda: 3},
		{Channel: xsec.Absorption, Lambda: 6},
	}
	// 1/2 + 1/3 + 1/6 = 1
	assert.InDelta(t, 1.0, xsec.Total(paths), 1e-12)
	assert.True(t, math.IsInf(xsec.Total(nil), 1))
}

// TestSelectFate_ProbabilitiesSumToOne verifies the §-level property: for a
// species with nonzero total mean free path, channel probabilities
// λ_total/λ_channel sum to exactly 1, and every draw lands in a segment.
func TestSelectFate_ProbabilitiesSumToOne(t *testing.T) {
	tab := xsec.DefaultTable()
	paths, err := xsec.MeanFreePaths(tab, event.PDGPiPlus, 0.165, rho0)
	require.NoError(t, err)
	total := xsec.Total(paths)

	sum := 0.0
	for _, p := range paths {
		sum += total / p.Lambda
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	// Sweep draws across [0,1): every u must map to some channel without error.
	for u := 0.0; u < 1; u += 1e-3 {
		_, err = xsec.SelectFate(paths, total, u)
		require.NoError(t, err)
	}
	// And the extreme draw just below 1 lands in the last segment.
	ch, err := xsec.SelectFate(paths, total, math.Nextafter(1, 0))
	require.NoError(t, err)
	assert.Equal(t, xsec.ChargeExchange, ch)
}

// TestSelectFate_DeterministicPartition verifies that segment boundaries
// follow the fixed channel order: small draws select Elastic, and the
// partition point between channels matches λ_total/λ_elastic.
func TestSelectFate_DeterministicPartition(t *testing.T) {
	paths := []xsec.PathLen{
		{Channel: xsec.Elastic, Lambda: 2},   // probability 1/2
		{Channel: xsec.Inelastic, Lambda: 4},  // probability 1/4
		{Channel: xsec.Absorption, Lambda: 4}, // probability 1/4
	}
	total := xsec.Total(paths) // = 1

	for u, want := range map[float64]xsec.Channel{
		0.0:  xsec.Elastic,
		0.49: xsec.Elastic,
		0.51: xsec.Inelastic,
		0.74: xsec.Inelastic,
		0.76: xsec.Absorption,
		0.99: xsec.Absorption,
	} {
		ch, err := xsec.SelectFate(paths, total, u)
		require.NoError(t, err)
		assert.Equal(t, want, ch, "u=%g", u)
	}
}

// TestSelectFate_Errors verifies the selector's contract violations.
func TestSelectFate_Errors(t *testing.T) {
	paths := []xsec.PathLen{{Channel: xsec.Elastic, Lambda: 2}}

	_, err := xsec.SelectFate(nil, 1, 0.5)
	assert.ErrorIs(t, err, xsec.ErrNoChannels)

	_, err = xsec.SelectFate(paths, math.Inf(1), 0.5)
	assert.ErrorIs(t, err, xsec.ErrNoInteraction)

	_, err = xsec.SelectFate(paths, 2, 1.0)
	assert.ErrorIs(t, err, xsec.ErrBadDraw)
	_, err = xsec.SelectFate(paths, 2, -0.1)
	assert.ErrorIs(t, err, xsec.ErrBadDraw)
}

// TestScaled verifies scaling multiplies σ (and hence divides λ) and that
// factor 0 makes the medium transparent.
func TestScaled(t *testing.T) {
	tab := xsec.DefaultTable()

	half, err := tab.Scaled(0.5)
	require.NoError(t, err)
	assert.InDelta(t,
		tab.Sigma(event.PDGPiPlus, xsec.Elastic, 0.165)/2,
		half.Sigma(event.PDGPiPlus, xsec.Elastic, 0.165), 1e-12)

	transparent, err := tab.Scaled(0)
	require.NoError(t, err)
	paths, err := xsec.MeanFreePaths(transparent, event.PDGPiPlus, 0.165, rho0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(xsec.Total(paths), 1), "σ=0 medium is transparent")

	_, err = tab.Scaled(-1)
	assert.ErrorIs(t, err, xsec.ErrBadScale)
	_, err = tab.Scaled(math.NaN())
	assert.ErrorIs(t, err, xsec.ErrBadScale)
}
