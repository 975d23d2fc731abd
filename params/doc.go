// SPDX-License-Identifier: MIT
// Package params defines the statically-named parameter schema of a fitted
// projected Gaussian-Process model.
//
// The external loader hands the core a ParameterSet with named fields:
//
//	ps := params.ParameterSet{Weights: w}                // n_lags × n_filters
//	ps := params.ParameterSet{Weights: w, Warping: &wc}  // warped-time variants
//
// When the loader only has a flat name → array mapping (as produced by an
// archive reader), Schema.Resolve performs the one-time suffix lookup and
// fails loudly with a *MissingParameterError when the weight key is missing
// or ambiguous. Nothing downstream of Resolve matches names.
package params
