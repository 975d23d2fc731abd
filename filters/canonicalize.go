// SPDX-License-Identifier: MIT

package filters

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/projgp/matrix"
	"github.com/katalvlaran/projgp/params"
)

const (
	opCanonicalize = "Canonicalize"
	opColumn       = "Column"
	opSign         = "Sign"
	opCondition    = "Condition"
)

// FilterBank is a canonicalized filter matrix together with the permutation
// and sign flips that produced it. It is immutable; every accessor returns a copy.
type FilterBank struct {
	filters      *matrix.Dense // n_lags × n_filters, canonical
	order        []int         // order[i] = raw column of canonical column i
	flip         []bool        // flip[i] = canonical column i was negated
	referenceLag int
}

// Canonicalize sorts and orients the projection weights of ps.
//
// Implementation:
//   - Stage 1: validate weights (non-nil, finite) and the reference lag.
//   - Stage 2: population std per column; stable sort by non-increasing std.
//   - Stage 3: permute columns into that order (Induced), then negate those
//     whose value at the reference lag is negative (ScaleCols; zeros stay +0).
//
// Errors:
//   - params.ErrNilWeights, matrix.ErrNaNInf, ErrReferenceLag.
//
// Complexity:
//   - Time O(L·F + F log F), Space O(L·F).
func Canonicalize(ps params.ParameterSet, opts ...Option) (*FilterBank, error) {
	if ps.Weights == nil {
		return nil, filtersErrorf(opCanonicalize, params.ErrNilWeights)
	}

	return CanonicalizeMatrix(ps.Weights, opts...)
}

// CanonicalizeMatrix is Canonicalize for an already-extracted weight matrix.
func CanonicalizeMatrix(w matrix.Matrix, opts ...Option) (*FilterBank, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateFinite(w); err != nil {
		return nil, filtersErrorf(opCanonicalize, err)
	}
	nLags, nFilters := w.Rows(), w.Cols()
	if o.referenceLag >= nLags {
		return nil, filtersErrorf(opCanonicalize,
			fmt.Errorf("lag %d with %d lags: %w", o.referenceLag, nLags, ErrReferenceLag))
	}

	std, err := matrix.ColStd(w)
	if err != nil {
		return nil, filtersErrorf(opCanonicalize, err)
	}
	order := make([]int, nFilters)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return std[order[a]] > std[order[b]] })

	d, err := matrix.AsDense(w)
	if err != nil {
		return nil, filtersErrorf(opCanonicalize, err)
	}
	allLags := make([]int, nLags)
	for i := range allLags {
		allLags[i] = i
	}
	sorted, err := d.Induced(allLags, order)
	if err != nil {
		return nil, filtersErrorf(opCanonicalize, err)
	}
	flip := make([]bool, nFilters)
	signs := make([]float64, nFilters)
	var anchor float64
	for i := range order {
		if anchor, err = sorted.At(o.referenceLag, i); err != nil {
			return nil, filtersErrorf(opCanonicalize, err)
		}
		flip[i] = anchor < 0
		signs[i] = 1
		if flip[i] {
			signs[i] = -1
		}
	}
	out, err := matrix.ScaleCols(sorted, signs)
	if err != nil {
		return nil, filtersErrorf(opCanonicalize, err)
	}

	return &FilterBank{filters: out, order: order, flip: flip, referenceLag: o.referenceLag}, nil
}

// Filters returns a copy of the canonical n_lags × n_filters matrix.
func (b *FilterBank) Filters() *matrix.Dense { return b.filters.Copy() }

// Order returns order[i] = original column index of canonical filter i.
func (b *FilterBank) Order() []int { return append([]int(nil), b.order...) }

// FlipMask returns flip[i] = canonical filter i was negated.
func (b *FilterBank) FlipMask() []bool { return append([]bool(nil), b.flip...) }

// Signs returns ±1 per canonical filter (-1 where flipped).
func (b *FilterBank) Signs() []float64 {
	s := make([]float64, len(b.flip))
	for i, f := range b.flip {
		s[i] = 1
		if f {
			s[i] = -1
		}
	}

	return s
}

// NLags returns the filter length.
func (b *FilterBank) NLags() int { return b.filters.Rows() }

// NFilters returns the number of filters.
func (b *FilterBank) NFilters() int { return b.filters.Cols() }

// ReferenceLag returns the lag used as sign anchor.
func (b *FilterBank) ReferenceLag() int { return b.referenceLag }

// Column returns a copy of canonical filter i.
func (b *FilterBank) Column(i int) ([]float64, error) {
	col, err := b.filters.Col(i)
	if err != nil {
		return nil, filtersErrorf(opColumn, ErrFilterIndex)
	}

	return col, nil
}

// Sign returns -1 if canonical filter i was negated, else 1.
func (b *FilterBank) Sign(i int) (float64, error) {
	if i < 0 || i >= len(b.flip) {
		return 0, filtersErrorf(opSign, ErrFilterIndex)
	}
	if b.flip[i] {
		return -1, nil
	}

	return 1, nil
}

// Condition returns the 2-norm condition number of the filter matrix.
// Large values mean inverse projection through this bank is unstable.
func (b *FilterBank) Condition() (float64, error) {
	c, err := matrix.Cond(b.filters)
	if err != nil {
		return 0, filtersErrorf(opCondition, err)
	}

	return c, nil
}
