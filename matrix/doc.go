// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric core shared by the projgp packages.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage with safe accessors and an explicit
//     NaN/Inf ingestion policy (options.go).
//   - Kernels: Mul, Transpose, ScaleCols, MatVec; Induced for column permutations.
//   - Column statistics over the lag axis of a filter bank: ColStd.
//   - MinNormSolve: minimum-norm least squares through a thin SVD, the inverse
//     projection used to sample a response surface; Cond for conditioning checks.
//
// All user-triggered failures are reported as sentinel errors (errors.go)
// wrapped with an operation tag; match them with errors.Is.
package matrix
