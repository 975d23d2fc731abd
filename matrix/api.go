// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "fmt"

const opAsDense = "AsDense"

// AsDense returns m itself when it already is a *Dense, otherwise a fresh
// *Dense copy read through At. Callers that mutate the result must copy first.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(1) for *Dense, O(r*c) otherwise.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if res.data[i*c+j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAsDense, err)
			}
		}
	}

	return res, nil
}

// ColStd returns the per-column population standard deviations of X.
// For a filter bank (lags × filters) this is the spread of each filter over its lags.
func ColStd(X Matrix) ([]float64, error) { return colStd(X) }

// MustAt is At for indices already validated by the caller; it panics on misuse.
// Intended for tight loops in sibling packages after shape checks.
func MustAt(m Matrix, i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustAt(%d,%d): %v", i, j, err))
	}

	return v
}
