// SPDX-License-Identifier: MIT

package stimulus

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/projgp/filters"
	"github.com/katalvlaran/projgp/matrix"
)

// ErrEmptyTrace indicates a stimulus trace of length zero.
var ErrEmptyTrace = errors.New("stimulus: empty trace")

// ErrBadLags indicates a non-positive lag window.
var ErrBadLags = errors.New("stimulus: number of lags must be ≥ 1")

const (
	opDesign  = "DesignMatrix"
	opProject = "Project"
)

func stimulusErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DesignMatrix builds the zero-padded lag window of trace.
// Errors: ErrEmptyTrace, ErrBadLags, matrix.ErrNaNInf (non-finite sample).
// Complexity: Time O(T·L), Space O(T·L).
func DesignMatrix(trace []float64, nLags int) (*matrix.Dense, error) {
	if len(trace) == 0 {
		return nil, stimulusErrorf(opDesign, ErrEmptyTrace)
	}
	if nLags < 1 {
		return nil, stimulusErrorf(opDesign, ErrBadLags)
	}
	if err := matrix.ValidateFiniteVec(trace); err != nil {
		return nil, stimulusErrorf(opDesign, err)
	}
	T := len(trace)
	flat := make([]float64, T*nLags)
	for t := 0; t < T; t++ {
		row := flat[t*nLags : (t+1)*nLags]
		for k := 0; k < nLags && k <= t; k++ {
			row[k] = trace[t-k]
		}
	}
	d, err := matrix.NewDenseFrom(T, nLags, flat)
	if err != nil {
		return nil, stimulusErrorf(opDesign, err)
	}

	return d, nil
}

// Project returns the T × n_filters projection of trace onto the canonical filters.
func Project(trace []float64, bank *filters.FilterBank) (*matrix.Dense, error) {
	if bank == nil {
		return nil, stimulusErrorf(opProject, filters.ErrNilBank)
	}

	return ProjectMatrix(trace, bank.Filters())
}

// ProjectMatrix is Project for an arbitrary L × n weight matrix, e.g. the raw
// (non-canonical) model weights.
func ProjectMatrix(trace []float64, w matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, stimulusErrorf(opProject, err)
	}
	d, err := DesignMatrix(trace, w.Rows())
	if err != nil {
		return nil, stimulusErrorf(opProject, err)
	}
	p, err := matrix.Mul(d, w)
	if err != nil {
		return nil, stimulusErrorf(opProject, err)
	}

	return p, nil
}
