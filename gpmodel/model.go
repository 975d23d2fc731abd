// SPDX-License-Identifier: MIT

package gpmodel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/projgp/matrix"
)

// Column offsets after the lag block of a native input row.
const (
	OffsetTime    = 0
	OffsetBlock   = 1
	OffsetSubject = 2
	extraColumns  = 3
)

var (
	// ErrInputWidth indicates input rows whose width does not match the model.
	ErrInputWidth = errors.New("gpmodel: input width mismatch")

	// ErrBadLags indicates a non-positive number of lags.
	ErrBadLags = errors.New("gpmodel: number of lags must be ≥ 1")
)

// PredictiveModel maps N native input rows to N latent means.
type PredictiveModel interface {
	PredictMean(X matrix.Matrix) ([]float64, error)
}

// PartialPredictor additionally reports the contribution of each additive
// kernel component, one slice of length N per component.
type PartialPredictor interface {
	PredictiveModel
	Components() []string
	PredictPartial(X matrix.Matrix) ([][]float64, error)
}

// Covariates are the categorical codes appended to every input row.
type Covariates struct {
	Block   float64 // hazard-block code
	Subject float64 // subject code
}

// InputWidth returns the native row width for nLags lags.
func InputWidth(nLags int) int { return nLags + extraColumns }

// NewInputs allocates n rows of the native layout and fills the covariate columns.
// The lag and time columns are left at zero.
func NewInputs(n, nLags int, cov Covariates) (*matrix.Dense, error) {
	if nLags < 1 {
		return nil, fmt.Errorf("NewInputs: %w", ErrBadLags)
	}
	w := InputWidth(nLags)
	X, err := matrix.NewDense(n, w)
	if err != nil {
		return nil, fmt.Errorf("NewInputs: %w", err)
	}
	for i := 0; i < n; i++ {
		if err = X.Set(i, nLags+OffsetBlock, cov.Block); err != nil {
			return nil, fmt.Errorf("NewInputs: %w", err)
		}
		if err = X.Set(i, nLags+OffsetSubject, cov.Subject); err != nil {
			return nil, fmt.Errorf("NewInputs: %w", err)
		}
	}

	return X, nil
}
