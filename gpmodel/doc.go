// SPDX-License-Identifier: MIT

// Package gpmodel defines the contract between this library and a fitted
// predictive model, and the layout of the model's native input rows.
//
// A native input row for a model with L lags is
//
//	[ r_0 … r_{L-1} | time | block | subject ]
//
// so InputWidth(L) == L+3. Fitting and persistence live outside this module;
// anything that can map a batch of such rows to a latent mean satisfies
// PredictiveModel. Linear is a small in-memory model used by the examples
// and tests.
package gpmodel
