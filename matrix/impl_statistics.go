// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over the lag axis of a filter bank (rows = lags, cols = filters).
//   - Standard deviation is the POPULATION form (divide by r), matching the
//     ordering criterion used by filter canonicalization. The ddof choice does
//     not change the ordering, only the reported magnitudes.
//
// Exposed API:
//   - ColStd(X)   -> []float64   // per-column population standard deviation
//
// Determinism & Performance:
//   - Fixed column order; each column is extracted once and handed to gonum/stat.

package matrix

import "gonum.org/v1/gonum/stat"

// Operation name constant for unified error wrapping.
const opColStd = "ColStd"

// columns extracts every column of X as its own slice (j-major).
// Dense fast-path reads the flat buffer; fallback uses At with full error propagation.
func columns(X Matrix) ([][]float64, error) {
	r, c := X.Rows(), X.Cols()
	out := make([][]float64, c)
	for j := 0; j < c; j++ {
		out[j] = make([]float64, r)
	}
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out[j][i] = d.data[base+j]
			}
		}

		return out, nil
	}
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if out[j][i], err = X.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// colStd returns the population standard deviation of every column.
// A constant column yields 0 up to rounding. NaN inputs propagate into their column.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the column copies.
func colStd(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColStd, err)
	}
	cols, err := columns(X)
	if err != nil {
		return nil, matrixErrorf(opColStd, err)
	}
	stds := make([]float64, len(cols))
	for j, col := range cols {
		stds[j] = stat.PopStdDev(col, nil)
	}

	return stds, nil
}
