// SPDX-License-Identifier: MIT

// Package lick reads filter activations at the moment of a lick.
//
// A trial without a lick carries a NaN reaction time; its activation is NaN
// and no error is reported. Otherwise the reaction time, in steps, is rounded
// to the nearest step and used as a row index into the trial's projection.
package lick

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/projgp/filters"
	"github.com/katalvlaran/projgp/matrix"
)

// ErrOutOfRange indicates a reaction time or filter index outside the projection.
var ErrOutOfRange = errors.New("lick: index out of range")

const (
	opAt       = "At"
	opOriented = "Oriented"
)

// Trial pairs a reaction time with the trial's projected stimulus.
type Trial struct {
	RT        float64       // reaction time in steps; NaN when there was no lick
	Projected matrix.Matrix // T × n_filters
}

// Licked reports whether the trial has a reaction time.
func (tr Trial) Licked() bool { return !math.IsNaN(tr.RT) }

// At returns the activation of filter column filterDim at the lick step.
// A trial without a lick yields (NaN, nil).
//
// Errors:
//   - matrix.ErrNilMatrix (no projection on a licked trial),
//     ErrOutOfRange (step or filter outside the projection, or RT ±Inf).
func At(tr Trial, filterDim int) (float64, error) {
	if !tr.Licked() {
		return math.NaN(), nil
	}
	if err := matrix.ValidateNotNil(tr.Projected); err != nil {
		return 0, fmt.Errorf("%s: %w", opAt, err)
	}
	if math.IsInf(tr.RT, 0) {
		return 0, fmt.Errorf("%s: rt %g: %w", opAt, tr.RT, ErrOutOfRange)
	}
	step := int(math.Round(tr.RT))
	if step < 0 || step >= tr.Projected.Rows() || filterDim < 0 || filterDim >= tr.Projected.Cols() {
		return 0, fmt.Errorf("%s: step %d filter %d of %dx%d: %w",
			opAt, step, filterDim, tr.Projected.Rows(), tr.Projected.Cols(), ErrOutOfRange)
	}
	v, err := tr.Projected.At(step, filterDim)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opAt, err)
	}

	return v, nil
}

// Oriented reads canonical filter filterDim from a projection made with the
// raw (non-canonical) weights: it looks up the raw column bank.Order()[filterDim]
// and applies the bank's sign for that filter.
func Oriented(tr Trial, filterDim int, bank *filters.FilterBank) (float64, error) {
	if bank == nil {
		return 0, fmt.Errorf("%s: %w", opOriented, filters.ErrNilBank)
	}
	sign, err := bank.Sign(filterDim)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opOriented, err)
	}
	v, err := At(tr, bank.Order()[filterDim])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opOriented, err)
	}

	return sign * v, nil
}
