// SPDX-License-Identifier: MIT

package trials

import (
	"fmt"
	"math"
	"sort"

	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
)

// Curve is a per-group summary, X sorted ascending.
type Curve struct {
	X []float64 // group values, usually the signal
	Y []float64 // summary per group, NaN where no finite value contributed
}

// SelectBlock returns a view of the rows of one hazard block: the split block
// is every row not labelled "nonsplit".
func SelectBlock(dt *etable.Table, split bool) *etable.IdxView {
	ix := etable.NewIdxView(dt)
	ix.Filter(func(et *etable.Table, row int) bool {
		return (et.CellString(ColHazard, row) != BlockNonSplit) == split
	})

	return ix
}

// nanMean averages col over the rows of ix, skipping NaN cells.
func nanMean(ix *etable.IdxView, col string) float64 {
	fin := ix.Clone()
	fin.Filter(func(et *etable.Table, row int) bool {
		return !math.IsNaN(et.CellFloat(col, row))
	})
	if fin.Len() == 0 {
		return math.NaN()
	}

	return agg.Mean(fin, col)[0]
}

// bySignal groups the rows of ix that pass keep by Sig and averages col per group.
func bySignal(ix *etable.IdxView, col string, keep func(et *etable.Table, row int) bool) Curve {
	return byValue(ix, ColSig, col, keep)
}

// byValue groups the rows of ix that pass keep by the value of key and
// averages col per group. Rows with a NaN key are dropped.
func byValue(ix *etable.IdxView, key, col string, keep func(et *etable.Table, row int) bool) Curve {
	sel := ix.Clone()
	sel.Filter(keep)

	seen := make(map[float64]bool)
	var keys []float64
	for _, row := range sel.Idxs {
		k := sel.Table.CellFloat(key, row)
		if !seen[k] && !math.IsNaN(k) {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Float64s(keys)

	c := Curve{X: keys, Y: make([]float64, len(keys))}
	for i, k := range keys {
		g := sel.Clone()
		g.Filter(func(et *etable.Table, row int) bool { return et.CellFloat(key, row) == k })
		c.Y[i] = nanMean(g, col)
	}

	return c
}

// HitMeansBySignal averages col per signal over the hit trials of ix.
func HitMeansBySignal(ix *etable.IdxView, col string) (Curve, error) {
	if err := requireCols(ix.Table, col, ColSig, ColOutcome); err != nil {
		return Curve{}, fmt.Errorf("HitMeansBySignal: %w", err)
	}

	return bySignal(ix, col, func(et *etable.Table, row int) bool {
		return et.CellString(ColOutcome, row) == OutcomeHit
	}), nil
}

// OutcomeMean averages col over the trials of ix with the given outcome.
func OutcomeMean(ix *etable.IdxView, col, outcome string) (float64, error) {
	if err := requireCols(ix.Table, col, ColOutcome); err != nil {
		return 0, fmt.Errorf("OutcomeMean: %w", err)
	}
	sel := ix.Clone()
	sel.Filter(func(et *etable.Table, row int) bool {
		return et.CellString(ColOutcome, row) == outcome
	})

	return nanMean(sel, col), nil
}

// PsychometricBySignal is the hit rate per signal over trials without an early lick.
func PsychometricBySignal(ix *etable.IdxView) (Curve, error) {
	if err := requireCols(ix.Table, ColHit, ColSig, ColEarly); err != nil {
		return Curve{}, fmt.Errorf("PsychometricBySignal: %w", err)
	}

	return bySignal(ix, ColHit, func(et *etable.Table, row int) bool {
		return et.CellFloat(ColEarly, row) == 0
	}), nil
}

// ChronometricBySignal is the mean reaction time after the change, in
// seconds, per positive signal over hits. period is the step length in seconds.
func ChronometricBySignal(ix *etable.IdxView, period float64) (Curve, error) {
	if err := requireCols(ix.Table, ColRTChange, ColSig, ColHit); err != nil {
		return Curve{}, fmt.Errorf("ChronometricBySignal: %w", err)
	}
	c := bySignal(ix, ColRTChange, func(et *etable.Table, row int) bool {
		return et.CellFloat(ColHit, row) != 0 && et.CellFloat(ColSig, row) > 0
	})
	for k := range c.Y {
		c.Y[k] *= period
	}

	return c, nil
}

// EarlyRateBy is the proportion of early licks per distinct value of key,
// e.g. a model-sample id column of simulated trials.
func EarlyRateBy(ix *etable.IdxView, key string) (Curve, error) {
	if err := requireCols(ix.Table, key, ColEarly); err != nil {
		return Curve{}, fmt.Errorf("EarlyRateBy: %w", err)
	}

	return byValue(ix, key, ColEarly, func(*etable.Table, int) bool { return true }), nil
}
