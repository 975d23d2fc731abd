// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/katalvlaran/projgp/filters"
	"github.com/katalvlaran/projgp/gpmodel"
	"github.com/katalvlaran/projgp/matrix"
)

const (
	opSample           = "Sample"
	opSampleComponents = "SampleComponents"
	opSynthesize       = "Synthesize"
)

// Slice is a sampled G × G window of a response surface.
type Slice struct {
	// Component names the kernel component, "" for the full mean.
	Component string
	// Mean holds the model mean; row i ↔ YS[i], column j ↔ XS[j].
	Mean *matrix.Dense
	// XS, YS are the grid coordinates before any flip.
	XS, YS []float64
	// Cond is the 2-norm condition number of the filter bank, +Inf when singular.
	Cond float64
	// Rank is the numerical rank of the bank seen by the inverse projection.
	Rank int
}

// synthesis is the shared first half of Sample and SampleComponents.
type synthesis struct {
	X      *matrix.Dense
	xs, ys []float64
	rank   int
	cond   float64
}

// Synthesize returns the G² synthetic model inputs of grid together with the axes.
// Row p = i·G + j corresponds to mesh point (XS[j], YS[i]).
//
// Errors:
//   - filters.ErrNilBank, ErrBadResolution, ErrBadDims, ErrBadRange,
//     matrix.ErrSolveFailed.
//
// Complexity:
//   - Time O(F·L·min(F,L) + L·F·G²), Space O((L+F)·G²).
func Synthesize(bank *filters.FilterBank, grid VisualizationGrid) (*matrix.Dense, []float64, []float64, error) {
	s, err := synthesize(bank, grid)
	if err != nil {
		return nil, nil, nil, surfaceErrorf(opSynthesize, err)
	}

	return s.X, s.xs, s.ys, nil
}

func synthesize(bank *filters.FilterBank, grid VisualizationGrid) (*synthesis, error) {
	if bank == nil {
		return nil, filters.ErrNilBank
	}
	nLags, nFilters := bank.NLags(), bank.NFilters()
	if err := grid.Validate(nFilters); err != nil {
		return nil, err
	}
	G := grid.Resolution
	n := G * G
	xs, ys := grid.Axes()

	flip := bank.FlipMask()
	sx, sy := 1.0, 1.0
	if flip[grid.Dims[0]] != grid.Flip[0] {
		sx = -1
	}
	if flip[grid.Dims[1]] != grid.Flip[1] {
		sy = -1
	}

	target, err := matrix.NewDense(nFilters, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < G; i++ {
		for j := 0; j < G; j++ {
			p := i*G + j
			if err = target.Set(grid.Dims[0], p, sx*xs[j]); err != nil {
				return nil, err
			}
			if err = target.Set(grid.Dims[1], p, sy*ys[i]); err != nil {
				return nil, err
			}
		}
	}

	ft, err := matrix.Transpose(bank.Filters())
	if err != nil {
		return nil, err
	}
	r, rank, err := matrix.MinNormSolve(ft, target)
	if err != nil {
		return nil, err
	}
	cond, err := bank.Condition()
	if err != nil {
		return nil, err
	}

	X, err := gpmodel.NewInputs(n, nLags, grid.Covariates)
	if err != nil {
		return nil, err
	}
	var v float64
	for p := 0; p < n; p++ {
		for k := 0; k < nLags; k++ {
			if v, err = r.At(k, p); err != nil {
				return nil, err
			}
			if err = X.Set(p, k, v); err != nil {
				return nil, err
			}
		}
	}

	return &synthesis{X: X, xs: xs, ys: ys, rank: rank, cond: cond}, nil
}

// reshape packs n = G² predictions into a G × G mean, accepting any values.
func (s *synthesis) reshape(component string, pred []float64) (*Slice, error) {
	G := len(s.xs)
	if len(pred) != G*G {
		return nil, fmt.Errorf("got %d, want %d: %w", len(pred), G*G, ErrPredictionShape)
	}
	mean, err := matrix.NewDenseFrom(G, G, pred, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}

	return &Slice{
		Component: component,
		Mean:      mean,
		XS:        append([]float64(nil), s.xs...),
		YS:        append([]float64(nil), s.ys...),
		Cond:      s.cond,
		Rank:      s.rank,
	}, nil
}

// Sample evaluates the model mean over grid in the space of bank's filters.
//
// Errors:
//   - ErrNilModel, filters.ErrNilBank, ErrBadResolution, ErrBadDims, ErrBadRange,
//     ErrPredictionShape, matrix.ErrSolveFailed, and any error of the model.
func Sample(model gpmodel.PredictiveModel, bank *filters.FilterBank, grid VisualizationGrid) (*Slice, error) {
	if model == nil {
		return nil, surfaceErrorf(opSample, ErrNilModel)
	}
	s, err := synthesize(bank, grid)
	if err != nil {
		return nil, surfaceErrorf(opSample, err)
	}
	pred, err := model.PredictMean(s.X)
	if err != nil {
		return nil, surfaceErrorf(opSample, err)
	}
	out, err := s.reshape("", pred)
	if err != nil {
		return nil, surfaceErrorf(opSample, err)
	}

	return out, nil
}

// SampleComponents evaluates every additive kernel component of model over grid,
// in the order of model.Components().
func SampleComponents(model gpmodel.PartialPredictor, bank *filters.FilterBank, grid VisualizationGrid) ([]*Slice, error) {
	if model == nil {
		return nil, surfaceErrorf(opSampleComponents, ErrNilModel)
	}
	s, err := synthesize(bank, grid)
	if err != nil {
		return nil, surfaceErrorf(opSampleComponents, err)
	}
	parts, err := model.PredictPartial(s.X)
	if err != nil {
		return nil, surfaceErrorf(opSampleComponents, err)
	}
	names := model.Components()
	if len(parts) != len(names) {
		return nil, surfaceErrorf(opSampleComponents,
			fmt.Errorf("%d components, %d names: %w", len(parts), len(names), ErrPredictionShape))
	}
	out := make([]*Slice, len(parts))
	for c, pred := range parts {
		if out[c], err = s.reshape(names[c], pred); err != nil {
			return nil, surfaceErrorf(opSampleComponents, err)
		}
	}

	return out, nil
}
