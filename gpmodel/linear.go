// SPDX-License-Identifier: MIT

package gpmodel

import (
	"fmt"

	"github.com/katalvlaran/projgp/matrix"
)

// Component names reported by Linear.
const (
	ComponentStimulus   = "stimulus"
	ComponentTime       = "time"
	ComponentCovariates = "covariates"
)

// Linear is an additive linear model over the native input layout:
//
//	f(x) = Bias + Σ_k Lags[k]·x_k + Time·x_time + Block·x_block + Subject·x_subject
//
// It stands in for a fitted model wherever a deterministic mean is enough.
type Linear struct {
	Lags    []float64
	Time    float64
	Block   float64
	Subject float64
	Bias    float64
}

var _ PartialPredictor = (*Linear)(nil)

// Components implements PartialPredictor.
func (m *Linear) Components() []string {
	return []string{ComponentStimulus, ComponentTime, ComponentCovariates}
}

// PredictMean implements PredictiveModel.
func (m *Linear) PredictMean(X matrix.Matrix) ([]float64, error) {
	parts, err := m.PredictPartial(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(parts[0]))
	for i := range out {
		out[i] = m.Bias
		for _, p := range parts {
			out[i] += p[i]
		}
	}

	return out, nil
}

// PredictPartial implements PartialPredictor. The bias belongs to no component.
func (m *Linear) PredictPartial(X matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("Linear.PredictPartial: %w", err)
	}
	L := len(m.Lags)
	if X.Cols() != InputWidth(L) {
		return nil, fmt.Errorf("Linear.PredictPartial: %d cols, want %d: %w", X.Cols(), InputWidth(L), ErrInputWidth)
	}
	beta := make([]float64, X.Cols())
	copy(beta, m.Lags)
	stim, err := matrix.MatVec(X, beta)
	if err != nil {
		return nil, fmt.Errorf("Linear.PredictPartial: %w", err)
	}

	n := X.Rows()
	tm := make([]float64, n)
	cov := make([]float64, n)
	var xt, xb, xs float64
	for i := 0; i < n; i++ {
		if xt, err = X.At(i, L+OffsetTime); err != nil {
			return nil, fmt.Errorf("Linear.PredictPartial: %w", err)
		}
		if xb, err = X.At(i, L+OffsetBlock); err != nil {
			return nil, fmt.Errorf("Linear.PredictPartial: %w", err)
		}
		if xs, err = X.At(i, L+OffsetSubject); err != nil {
			return nil, fmt.Errorf("Linear.PredictPartial: %w", err)
		}
		tm[i] = m.Time * xt
		cov[i] = m.Block*xb + m.Subject*xs
	}

	return [][]float64{stim, tm, cov}, nil
}
