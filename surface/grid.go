// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"

	"github.com/emer/etable/minmax"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/projgp/gpmodel"
)

// DefaultResolution is the grid side used by the reference figures.
const DefaultResolution = 200

// VisualizationGrid describes one 2-D slice through filter space.
type VisualizationGrid struct {
	X, Y       minmax.F64         // axis ranges, inclusive
	Resolution int                // G, points per axis
	Dims       [2]int             // canonical filter indices on the X and Y axes
	Covariates gpmodel.Covariates // block and subject codes of every synthetic row
	Flip       [2]bool            // extra per-axis negation, XOR'ed with the bank's flips
}

// DefaultGrid returns the reference slice: filters 0 and 1, x ∈ [-2, 6],
// y ∈ [-4, 4], DefaultResolution points per axis.
func DefaultGrid() VisualizationGrid {
	return VisualizationGrid{
		X:          minmax.F64{Min: -2, Max: 6},
		Y:          minmax.F64{Min: -4, Max: 4},
		Resolution: DefaultResolution,
		Dims:       [2]int{0, 1},
	}
}

// Validate checks the grid against a bank of nFilters filters.
func (g VisualizationGrid) Validate(nFilters int) error {
	if g.Resolution < 1 {
		return ErrBadResolution
	}
	for _, d := range g.Dims {
		if d < 0 || d >= nFilters {
			return fmt.Errorf("dim %d of %d filters: %w", d, nFilters, ErrBadDims)
		}
	}
	if g.Dims[0] == g.Dims[1] {
		return fmt.Errorf("dims %v: %w", g.Dims, ErrBadDims)
	}
	for _, r := range []minmax.F64{g.X, g.Y} {
		if !finite(r.Min) || !finite(r.Max) {
			return fmt.Errorf("range [%g, %g]: %w", r.Min, r.Max, ErrBadRange)
		}
	}

	return nil
}

// Axes returns the untransformed grid coordinates XS and YS.
func (g VisualizationGrid) Axes() (xs, ys []float64) {
	return linspace(g.X, g.Resolution), linspace(g.Y, g.Resolution)
}

// linspace returns n evenly spaced values over r; a single point sits at r.Min.
func linspace(r minmax.F64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = r.Min
		return out
	}

	return floats.Span(out, r.Min, r.Max)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
