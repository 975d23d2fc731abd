// SPDX-License-Identifier: MIT

package trials_test

import (
	"math"
	"testing"

	"github.com/emer/etable/etable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/projgp/filters"
	"github.com/katalvlaran/projgp/lick"
	"github.com/katalvlaran/projgp/matrix"
	"github.com/katalvlaran/projgp/stimulus"
	"github.com/katalvlaran/projgp/trials"
)

type row struct {
	rt, sig  float64
	hazard   string
	outcome  string
	early    bool
	rtChange float64
	stim     []float64
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func fill(t *testing.T, rows []row, nSteps int) *etable.Table {
	t.Helper()
	dt, err := trials.NewTable("test", len(rows), nSteps)
	require.NoError(t, err)
	for i, r := range rows {
		dt.SetCellFloat(trials.ColTrial, i, float64(i))
		dt.SetCellFloat(trials.ColRT, i, r.rt)
		dt.SetCellFloat(trials.ColSig, i, r.sig)
		dt.SetCellString(trials.ColHazard, i, r.hazard)
		dt.SetCellString(trials.ColOutcome, i, r.outcome)
		dt.SetCellFloat(trials.ColEarly, i, b2f(r.early))
		dt.SetCellFloat(trials.ColHit, i, b2f(r.outcome == trials.OutcomeHit))
		dt.SetCellFloat(trials.ColRTChange, i, r.rtChange)
		stim := r.stim
		if stim == nil {
			stim = make([]float64, nSteps)
		}
		require.NoError(t, trials.SetTrace(dt, i, stim))
	}

	return dt
}

func fixture(t *testing.T) *etable.Table {
	nan := math.NaN()
	return fill(t, []row{
		{rt: 2, sig: 1, hazard: trials.BlockSplit, outcome: trials.OutcomeHit, rtChange: 4},
		{rt: 3, sig: 1, hazard: trials.BlockSplit, outcome: trials.OutcomeHit, rtChange: 6},
		{rt: 1, sig: 0.5, hazard: trials.BlockNonSplit, outcome: trials.OutcomeHit, rtChange: 10},
		{rt: nan, sig: 0.5, hazard: trials.BlockNonSplit, outcome: trials.OutcomeMiss, rtChange: nan},
		{rt: 1, sig: 0, hazard: trials.BlockSplit, outcome: trials.OutcomeFA, early: true, rtChange: nan},
		{rt: 2, sig: 0, hazard: trials.BlockNonSplit, outcome: trials.OutcomeHit, rtChange: 8},
	}, 4)
}

func TestNewTable(t *testing.T) {
	t.Parallel()
	dt, err := trials.NewTable("x", 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, dt.Rows)
	for _, c := range []string{trials.ColTrial, trials.ColRT, trials.ColSig, trials.ColHazard,
		trials.ColOutcome, trials.ColEarly, trials.ColHit, trials.ColRTChange, trials.ColStim} {
		assert.GreaterOrEqual(t, dt.ColIdx(c), 0, c)
	}
	tr, err := trials.Trace(dt, 2)
	require.NoError(t, err)
	assert.Len(t, tr, 5)

	_, err = trials.NewTable("x", -1, 5)
	require.ErrorIs(t, err, trials.ErrBadShape)
	_, err = trials.NewTable("x", 1, 0)
	require.ErrorIs(t, err, trials.ErrBadShape)
}

func TestTraceRoundTrip(t *testing.T) {
	t.Parallel()
	dt, err := trials.NewTable("x", 2, 3)
	require.NoError(t, err)
	require.NoError(t, trials.SetTrace(dt, 1, []float64{1, 2, 3}))
	got, err := trials.Trace(dt, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
	got, err = trials.Trace(dt, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, got)

	require.ErrorIs(t, trials.SetTrace(dt, 0, []float64{1}), trials.ErrTraceLength)
	require.ErrorIs(t, trials.SetTrace(dt, 2, []float64{1, 2, 3}), trials.ErrRow)
	_, err = trials.Trace(dt, -1)
	require.ErrorIs(t, err, trials.ErrRow)
	_, err = trials.Trace(&etable.Table{}, 0)
	require.ErrorIs(t, err, trials.ErrMissingColumn)
}

func TestAddLickActivations(t *testing.T) {
	t.Parallel()
	w, err := matrix.NewDenseRows([][]float64{{1, 0.5}, {-0.5, 2}})
	require.NoError(t, err)
	bank, err := filters.CanonicalizeMatrix(w, filters.WithReferenceLag(0))
	require.NoError(t, err)

	nan := math.NaN()
	dt := fill(t, []row{
		{rt: 2, outcome: trials.OutcomeHit, stim: []float64{1, 2, 3, nan}},
		{rt: nan, outcome: trials.OutcomeMiss, stim: []float64{1, 1, 1, 1}},
		{rt: 0.4, outcome: trials.OutcomeFA, stim: []float64{-1, nan, nan, nan}},
	}, 4)
	require.NoError(t, trials.AddLickActivations(dt, bank, []int{0, 1}))

	proj, err := stimulus.Project([]float64{1, 2, 3}, bank)
	require.NoError(t, err)
	for _, d := range []int{0, 1} {
		want, err := lick.At(lick.Trial{RT: 2, Projected: proj}, d)
		require.NoError(t, err)
		assert.InDelta(t, want, dt.CellFloat(trials.LickCol(d), 0), 1e-12)
		assert.True(t, math.IsNaN(dt.CellFloat(trials.LickCol(d), 1)))
		assert.False(t, math.IsNaN(dt.CellFloat(trials.LickCol(d), 2)))
	}

	// rerunning overwrites in place
	require.NoError(t, trials.AddLickActivations(dt, bank, []int{0}))

	require.ErrorIs(t, trials.AddLickActivations(dt, bank, []int{2}), filters.ErrFilterIndex)
	require.ErrorIs(t, trials.AddLickActivations(dt, nil, []int{0}), filters.ErrNilBank)

	late := fill(t, []row{{rt: 9, outcome: trials.OutcomeHit}}, 4)
	require.ErrorIs(t, trials.AddLickActivations(late, bank, []int{0}), lick.ErrOutOfRange)
}

func TestAddLickActivations_NaNBeforeLick(t *testing.T) {
	t.Parallel()
	w, err := matrix.NewDenseRows([][]float64{{1, 0.5}, {-0.5, 2}})
	require.NoError(t, err)
	bank, err := filters.CanonicalizeMatrix(w, filters.WithReferenceLag(0))
	require.NoError(t, err)
	require.Equal(t, 2, bank.NLags())

	nan := math.NaN()
	dt := fill(t, []row{
		{rt: 3, outcome: trials.OutcomeHit, stim: []float64{0, 1, nan, 2, 0}},
		{rt: 4, outcome: trials.OutcomeHit, stim: []float64{0, nan, 1, 2, 3}},
		{rt: 4, outcome: trials.OutcomeHit, stim: []float64{0, 7, 1, 2, 3}},
	}, 5)
	require.NoError(t, trials.AddLickActivations(dt, bank, []int{0, 1}))

	for _, d := range []int{0, 1} {
		assert.True(t, math.IsNaN(dt.CellFloat(trials.LickCol(d), 0)), "NaN at lag 1 of the lick")
		got := dt.CellFloat(trials.LickCol(d), 1)
		assert.False(t, math.IsNaN(got), "NaN older than the filter is never read")
		assert.InDelta(t, dt.CellFloat(trials.LickCol(d), 2), got, 1e-12)
	}
}

func TestSelectBlock(t *testing.T) {
	t.Parallel()
	dt := fixture(t)
	assert.Equal(t, []int{0, 1, 4}, trials.SelectBlock(dt, true).Idxs)
	assert.Equal(t, []int{2, 3, 5}, trials.SelectBlock(dt, false).Idxs)
}

func TestHitMeansBySignalAndOutcomeMean(t *testing.T) {
	t.Parallel()
	dt := fixture(t)
	all := etable.NewIdxView(dt)

	c, err := trials.HitMeansBySignal(all, trials.ColRTChange)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, c.X)
	assert.Equal(t, []float64{8, 10, 5}, c.Y)

	fa, err := trials.OutcomeMean(all, trials.ColRT, trials.OutcomeFA)
	require.NoError(t, err)
	assert.Equal(t, 1.0, fa)

	// the only miss has a NaN reaction time
	miss, err := trials.OutcomeMean(all, trials.ColRT, trials.OutcomeMiss)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(miss))

	_, err = trials.HitMeansBySignal(all, "LickStim9")
	require.ErrorIs(t, err, trials.ErrMissingColumn)
	_, err = trials.OutcomeMean(all, "nope", trials.OutcomeFA)
	require.ErrorIs(t, err, trials.ErrMissingColumn)
}

func TestPsychometricAndChronometric(t *testing.T) {
	t.Parallel()
	dt := fixture(t)
	all := etable.NewIdxView(dt)

	psy, err := trials.PsychometricBySignal(all)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, psy.X)
	assert.Equal(t, []float64{1, 0.5, 1}, psy.Y)

	chrono, err := trials.ChronometricBySignal(all, 0.05)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1}, chrono.X)
	assert.InDeltaSlice(t, []float64{0.5, 0.25}, chrono.Y, 1e-12)

	split, err := trials.ChronometricBySignal(trials.SelectBlock(dt, true), 0.05)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, split.X)
}

func TestEarlyRateBy(t *testing.T) {
	t.Parallel()
	dt := fixture(t)

	rate, err := trials.EarlyRateBy(etable.NewIdxView(dt), trials.ColSig)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, rate.X)
	assert.Equal(t, []float64{0.5, 0, 0}, rate.Y)

	split, err := trials.EarlyRateBy(trials.SelectBlock(dt, true), trials.ColTrial)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 4}, split.X)
	assert.Equal(t, []float64{0, 0, 1}, split.Y)

	_, err = trials.EarlyRateBy(etable.NewIdxView(dt), "SampleID")
	require.ErrorIs(t, err, trials.ErrMissingColumn)
}
