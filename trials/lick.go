// SPDX-License-Identifier: MIT

package trials

import (
	"fmt"
	"math"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"

	"github.com/katalvlaran/projgp/filters"
	"github.com/katalvlaran/projgp/lick"
	"github.com/katalvlaran/projgp/stimulus"
)

const opAddLick = "AddLickActivations"

// LickCol names the column holding the activation of canonical filter dim at lick time.
func LickCol(dim int) string { return fmt.Sprintf("LickStim%d", dim) }

// AddLickActivations adds (or overwrites) one LickCol(dim) column per entry
// of dims, holding the canonical filter activation at each trial's lick.
// Trials without a lick get NaN, as do trials whose trace has a NaN sample
// inside the filter window ending at the lick. Samples after the lick (often
// NaN padding) and before that window are never read.
//
// Errors:
//   - filters.ErrNilBank, ErrMissingColumn, filters.ErrFilterIndex,
//     lick.ErrOutOfRange (lick past the end of the trace), and projection errors.
func AddLickActivations(dt *etable.Table, bank *filters.FilterBank, dims []int) error {
	if bank == nil {
		return fmt.Errorf("%s: %w", opAddLick, filters.ErrNilBank)
	}
	if err := requireCols(dt, ColRT, ColStim); err != nil {
		return fmt.Errorf("%s: %w", opAddLick, err)
	}
	for _, d := range dims {
		if d < 0 || d >= bank.NFilters() {
			return fmt.Errorf("%s: dim %d: %w", opAddLick, d, filters.ErrFilterIndex)
		}
		if dt.ColIdx(LickCol(d)) >= 0 {
			continue
		}
		if err := dt.AddCol(etensor.NewFloat64([]int{dt.Rows}, nil, nil), LickCol(d)); err != nil {
			return fmt.Errorf("%s: %w", opAddLick, err)
		}
	}

	for row := 0; row < dt.Rows; row++ {
		vals, err := lickActivations(dt, row, bank, dims)
		if err != nil {
			return fmt.Errorf("%s: row %d: %w", opAddLick, row, err)
		}
		for k, d := range dims {
			dt.SetCellFloat(LickCol(d), row, vals[k])
		}
	}

	return nil
}

// lickActivations reads every requested filter at the lick of one trial.
// Only the last NLags samples up to the lick enter the causal projection at
// that step, so only that window is projected. A NaN inside it makes the
// whole row NaN.
func lickActivations(dt *etable.Table, row int, bank *filters.FilterBank, dims []int) ([]float64, error) {
	rt := dt.CellFloat(ColRT, row)
	if math.IsNaN(rt) {
		return nanRow(len(dims)), nil
	}
	trace, err := Trace(dt, row)
	if err != nil {
		return nil, err
	}
	step := int(math.Round(rt))
	if math.IsInf(rt, 0) || step < 0 || step >= len(trace) {
		return nil, fmt.Errorf("rt %g with %d steps: %w", rt, len(trace), lick.ErrOutOfRange)
	}
	start := max(0, step-bank.NLags()+1)
	window := trace[start : step+1]
	for _, v := range window {
		if math.IsNaN(v) {
			return nanRow(len(dims)), nil
		}
	}
	proj, err := stimulus.Project(window, bank)
	if err != nil {
		return nil, err
	}
	tr := lick.Trial{RT: rt - float64(start), Projected: proj}
	out := make([]float64, len(dims))
	for k, d := range dims {
		if out[k], err = lick.At(tr, d); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func nanRow(n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = math.NaN()
	}

	return out
}
