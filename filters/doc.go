// SPDX-License-Identifier: MIT

// Package filters canonicalizes the learned stimulus filters of a projected
// Gaussian-Process model.
//
// A projection-weight matrix W (n_lags × n_filters) is identifiable only up to
// column permutation and per-column sign. Canonicalize fixes both:
//
//   - Order: columns sorted by non-increasing population standard deviation
//     across lags; ties keep their original relative order.
//   - Sign: every column is oriented so its value at the reference lag is
//     non-negative (DefaultReferenceLag, configurable with WithReferenceLag).
//
// The result is an immutable FilterBank that remembers the permutation and
// the flips, so raw-weight projections can be mapped onto canonical filters:
//
//	raw[:, bank.Order()[i]] * bank.Sign(i) == bank.Filters()[:, i]
//
// Canonicalize is pure, deterministic and idempotent on its own output.
package filters
