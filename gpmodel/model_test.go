// SPDX-License-Identifier: MIT

package gpmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/projgp/gpmodel"
	"github.com/katalvlaran/projgp/matrix"
)

func TestNewInputs_Layout(t *testing.T) {
	t.Parallel()
	X, err := gpmodel.NewInputs(2, 3, gpmodel.Covariates{Block: 1, Subject: 4})
	require.NoError(t, err)
	assert.Equal(t, gpmodel.InputWidth(3), X.Cols())
	assert.Equal(t, []float64{
		0, 0, 0, 0, 1, 4,
		0, 0, 0, 0, 1, 4,
	}, X.RawData())

	_, err = gpmodel.NewInputs(2, 0, gpmodel.Covariates{})
	require.ErrorIs(t, err, gpmodel.ErrBadLags)
	_, err = gpmodel.NewInputs(0, 2, gpmodel.Covariates{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLinear_MeanIsBiasPlusComponents(t *testing.T) {
	t.Parallel()
	m := &gpmodel.Linear{Lags: []float64{1, -2}, Time: 0.5, Block: 3, Subject: -1, Bias: 0.25}
	X, err := matrix.NewDenseRows([][]float64{
		{1, 1, 2, 1, 0},
		{0, 2, 0, 0, 5},
	})
	require.NoError(t, err)

	parts, err := m.PredictPartial(X)
	require.NoError(t, err)
	require.Len(t, parts, len(m.Components()))
	assert.Equal(t, []float64{-1, -4}, parts[0])
	assert.Equal(t, []float64{1, 0}, parts[1])
	assert.Equal(t, []float64{3, -5}, parts[2])

	mean, err := m.PredictMean(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3.25, -8.75}, mean, 1e-12)
}

func TestLinear_WidthMismatch(t *testing.T) {
	t.Parallel()
	m := &gpmodel.Linear{Lags: []float64{1, 2, 3}}
	X, _ := matrix.NewDense(1, 4)
	_, err := m.PredictMean(X)
	require.ErrorIs(t, err, gpmodel.ErrInputWidth)
	_, err = m.PredictMean(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
