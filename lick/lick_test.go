// SPDX-License-Identifier: MIT

package lick_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/projgp/filters"
	"github.com/katalvlaran/projgp/lick"
	"github.com/katalvlaran/projgp/matrix"
	"github.com/katalvlaran/projgp/stimulus"
)

func projection(t *testing.T) *matrix.Dense {
	t.Helper()
	p, err := matrix.NewDenseRows([][]float64{
		{0.0, 10},
		{0.1, 11},
		{0.2, 12},
		{0.3, 13},
	})
	require.NoError(t, err)

	return p
}

func TestAt_NaNIffNoLick(t *testing.T) {
	t.Parallel()
	p := projection(t)
	for _, rt := range []float64{0, 1, 2.4, 2.6, 3} {
		v, err := lick.At(lick.Trial{RT: rt, Projected: p}, 0)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(v), "rt=%g", rt)
	}
	v, err := lick.At(lick.Trial{RT: math.NaN(), Projected: p}, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	// no projection needed when there was no lick
	v, err = lick.At(lick.Trial{RT: math.NaN()}, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestAt_RoundsReactionTime(t *testing.T) {
	t.Parallel()
	p := projection(t)
	cases := []struct {
		rt   float64
		want float64
	}{
		{0, 10}, {1.4, 11}, {1.5, 12}, {2.5, 13}, {3, 13},
	}
	for _, tc := range cases {
		v, err := lick.At(lick.Trial{RT: tc.rt, Projected: p}, 1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, "rt=%g", tc.rt)
	}
}

func TestAt_Errors(t *testing.T) {
	t.Parallel()
	p := projection(t)
	for _, tc := range []struct {
		name string
		tr   lick.Trial
		dim  int
	}{
		{"rt past end", lick.Trial{RT: 3.6, Projected: p}, 0},
		{"negative rt", lick.Trial{RT: -1, Projected: p}, 0},
		{"infinite rt", lick.Trial{RT: math.Inf(1), Projected: p}, 0},
		{"bad filter", lick.Trial{RT: 1, Projected: p}, 2},
	} {
		_, err := lick.At(tc.tr, tc.dim)
		require.ErrorIs(t, err, lick.ErrOutOfRange, tc.name)
	}
	_, err := lick.At(lick.Trial{RT: 1}, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestOriented_MatchesCanonicalProjection(t *testing.T) {
	t.Parallel()
	w, err := matrix.NewDenseRows([][]float64{
		{0.1, -2.0},
		{0.3, 1.0},
		{-0.2, 0.5},
	})
	require.NoError(t, err)
	bank, err := filters.CanonicalizeMatrix(w, filters.WithReferenceLag(0))
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, bank.Order())

	trace := []float64{1, -0.5, 2, 0.25, -1}
	raw, err := stimulus.ProjectMatrix(trace, w)
	require.NoError(t, err)
	canon, err := stimulus.Project(trace, bank)
	require.NoError(t, err)

	for f := 0; f < bank.NFilters(); f++ {
		for rt := 0.0; rt < float64(len(trace)); rt++ {
			got, err := lick.Oriented(lick.Trial{RT: rt, Projected: raw}, f, bank)
			require.NoError(t, err)
			want, err := lick.At(lick.Trial{RT: rt, Projected: canon}, f)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12, "f=%d rt=%g", f, rt)
		}
	}

	v, err := lick.Oriented(lick.Trial{RT: math.NaN(), Projected: raw}, 0, bank)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	_, err = lick.Oriented(lick.Trial{RT: 0, Projected: raw}, 5, bank)
	require.ErrorIs(t, err, filters.ErrFilterIndex)
	_, err = lick.Oriented(lick.Trial{RT: 0, Projected: raw}, 0, nil)
	require.ErrorIs(t, err, filters.ErrNilBank)
}
