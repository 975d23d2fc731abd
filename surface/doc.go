// SPDX-License-Identifier: MIT

// Package surface samples 2-D slices of a fitted response surface.
//
// The model takes lagged stimulus values as input, but the surface is easier
// to read in the space of two canonical filters. Sample therefore walks a
// G × G grid in filter space, maps every grid point back into lag space and
// asks the model for its mean there:
//
//  1. Mesh: XS = linspace(X.Min, X.Max, G), YS = linspace(Y.Min, Y.Max, G);
//     point (i, j) is (XS[j], YS[i]). An axis is negated when the bank
//     flipped that filter, unless the grid flips it back.
//  2. Target: a zero vector over all filters with Dims[0] ↦ x, Dims[1] ↦ y.
//  3. Inverse projection: Fᵀ·r = target solved for r by minimum-norm least
//     squares. With more lags than filters r is *a* pre-image, the one of
//     smallest norm, not a unique inverse.
//  4. Synthesis: r followed by time 0 and the grid's covariates.
//  5. One batched PredictMean call, reshaped to G × G (row ↔ YS, column ↔ XS).
//
// An ill-conditioned bank is not an error. Slice.Cond carries the condition
// number of the bank so callers can judge the result.
package surface
