// SPDX-License-Identifier: MIT

// Package trials keeps per-trial behavioral and prediction rows in an
// etable.Table and derives the summaries read off the model: filter
// activations at lick time, their per-signal means over hits, and the
// psychometric and chronometric curves of a hazard block.
//
// Every table built by NewTable has the columns
//
//	Trial    INT64    trial identifier
//	RT       FLOAT64  reaction time in steps, NaN without a lick
//	Sig      FLOAT64  change magnitude
//	Hazard   STRING   hazard block, "split" or "nonsplit"
//	Outcome  STRING   "Hit", "FA", "Miss", ...
//	Early    FLOAT64  1 for early licks, else 0
//	Hit      FLOAT64  1 for hits, else 0
//	RTChange FLOAT64  reaction time relative to the change
//	Stim     FLOAT64  [T] raw stimulus trace
//
// Means skip NaN cells; a group without a single finite value has mean NaN.
package trials
