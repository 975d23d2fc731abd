// SPDX-License-Identifier: MIT

// Package stimulus projects raw stimulus traces through a filter bank.
//
// The design matrix of a trace s and a window of L lags is the T × L matrix
//
//	D[t, k] = s[t-k]  if t-k ≥ 0, else 0
//
// and the projection is P = D · F for an L × n_filters filter matrix F.
// Row t of P depends only on s[0..t], so projections are causal.
package stimulus
