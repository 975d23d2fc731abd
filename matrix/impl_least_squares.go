// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Minimum-norm least squares for (typically underdetermined) systems A·X ≈ B,
//     solved for all right-hand sides at once.
//   - Condition number of A in the 2-norm, for callers that want to vet a
//     filter bank before inverse-projecting through it.
//
// Contract:
//   - The solution is the Moore–Penrose pseudo-inverse applied to B:
//     X = V·Σ⁺·Uᵀ·B with singular values below rcond·σ_max treated as zero,
//     rcond = machine epsilon · max(m, n). When A is wide (m < n) this is *a*
//     pre-image of B, the one with the smallest Euclidean norm; it is NOT unique.
//   - Ill-conditioning is never reported as an error. Near-singular A gives a
//     numerically unstable X; exactly singular directions are dropped.
//
// Determinism:
//   - gonum's SVD is deterministic for identical inputs.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opMinNormSolve = "MinNormSolve"
	opCond         = "Cond"
)

// machineEps is the float64 unit roundoff used for the rank cutoff.
const machineEps = 2.220446049250313e-16

// toGonum copies any Matrix into a fresh *mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(d.r, d.c, d.RawData()), nil
}

// fromGonum copies a gonum matrix back into a *Dense with the relaxed numeric
// policy: solver output is reported as-is, including non-finite values.
func fromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = false
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res.data[i*c+j] = g.At(i, j)
		}
	}

	return res, nil
}

// factorize runs a thin SVD of A and returns U, V and the singular values (descending).
func factorize(a *mat.Dense) (*mat.Dense, *mat.Dense, []float64, bool) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, nil, false
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return &u, &v, svd.Values(nil), true
}

// MinNormSolve returns the minimum-norm least-squares solution X of A·X ≈ B.
// MAIN DESCRIPTION:
//   - A is m×n, B is m×k, X is n×k. Each column of X solves its column of B.
//
// Implementation:
//   - Stage 1: validate A, B non-nil and A.Rows == B.Rows; reject non-finite input.
//   - Stage 2: thin SVD A = U·Σ·Vᵀ (gonum).
//   - Stage 3: Y = Uᵀ·B, scale row i by 1/σᵢ (or zero it below the rank cutoff).
//   - Stage 4: X = V·Y.
//
// Returns:
//   - *Dense: the solution (numeric policy relaxed; see fromGonum).
//   - int   : effective rank used by the solve.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (input), ErrSolveFailed (SVD did not converge).
//
// Complexity:
//   - Time O(m·n·min(m,n) + n·min(m,n)·k), Space O(n·k).
func MinNormSolve(a, b Matrix) (*Dense, int, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, 0, matrixErrorf(opMinNormSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, 0, matrixErrorf(opMinNormSolve, err)
	}
	if a.Rows() != b.Rows() {
		return nil, 0, matrixErrorf(opMinNormSolve, ErrDimensionMismatch)
	}
	if err := ValidateFinite(a); err != nil {
		return nil, 0, matrixErrorf(opMinNormSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, 0, matrixErrorf(opMinNormSolve, err)
	}
	ga, err := toGonum(a)
	if err != nil {
		return nil, 0, matrixErrorf(opMinNormSolve, err)
	}
	gb, err := toGonum(b)
	if err != nil {
		return nil, 0, matrixErrorf(opMinNormSolve, err)
	}

	u, v, s, ok := factorize(ga)
	if !ok {
		return nil, 0, matrixErrorf(opMinNormSolve, ErrSolveFailed)
	}
	cutoff := 0.0
	if len(s) > 0 {
		m, n := ga.Dims()
		cutoff = s[0] * machineEps * float64(max(m, n))
	}

	var y mat.Dense
	y.Mul(u.T(), gb)
	rank := 0
	for i, sv := range s {
		row := y.RawRowView(i)
		if sv <= cutoff {
			for k := range row {
				row[k] = 0
			}
			continue
		}
		rank++
		inv := 1 / sv
		for k := range row {
			row[k] *= inv
		}
	}

	var x mat.Dense
	x.Mul(v, &y)
	res, err := fromGonum(&x)
	if err != nil {
		return nil, 0, matrixErrorf(opMinNormSolve, err)
	}

	return res, rank, nil
}

// Cond returns the 2-norm condition number σ_max/σ_min of m.
// A rank-deficient m yields +Inf. Errors: ErrNilMatrix, ErrNaNInf, ErrSolveFailed.
func Cond(m Matrix) (float64, error) {
	if err := ValidateFinite(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDNone); !ok {
		return 0, matrixErrorf(opCond, ErrSolveFailed)
	}
	s := svd.Values(nil)
	last := s[len(s)-1]
	if last == 0 {
		return math.Inf(1), nil
	}

	return s[0] / last, nil
}
