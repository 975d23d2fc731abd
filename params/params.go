// SPDX-License-Identifier: MIT

package params

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/projgp/matrix"
)

// Default name conventions of the model archives.
const (
	DefaultWeightSuffix  = "W"
	DefaultWarpingSuffix = "coeffs_a"
	warpingSuffixB       = "coeffs_b"
	warpingSuffixC       = "coeffs_c"
)

// ParameterSet is the statically-named view of a fitted model's parameters.
type ParameterSet struct {
	// Weights is the projection-weight matrix, n_lags × n_filters.
	Weights *matrix.Dense
	// Warping holds the time-warping coefficients; nil for models without warped time.
	Warping *Warping
}

// Validate checks the invariants every consumer relies on.
func (ps ParameterSet) Validate() error {
	if ps.Weights == nil {
		return ErrNilWeights
	}
	if ps.Warping != nil {
		return ps.Warping.Validate()
	}

	return nil
}

// Warping holds the three coefficient vectors of a warped-time kernel.
type Warping struct {
	A, B, C []float64
}

// Validate ensures the three vectors are non-empty and of equal length.
func (w Warping) Validate() error {
	if len(w.A) == 0 || len(w.A) != len(w.B) || len(w.A) != len(w.C) {
		return fmt.Errorf("lengths %d/%d/%d: %w", len(w.A), len(w.B), len(w.C), ErrWarpingShape)
	}

	return nil
}

// Matrix stacks the coefficients as a 3×k matrix, rows A, B, C.
func (w Warping) Matrix() (*matrix.Dense, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	flat := make([]float64, 0, 3*len(w.A))
	flat = append(flat, w.A...)
	flat = append(flat, w.B...)
	flat = append(flat, w.C...)

	return matrix.NewDenseFrom(3, len(w.A), flat)
}

// Schema names the keys Resolve looks for in a flat name → array mapping.
// The zero value is not usable; start from DefaultSchema.
type Schema struct {
	WeightSuffix  string // unique key suffix of the projection weights
	WarpingSuffix string // key suffix of the first warping vector; "" disables warping lookup
}

// DefaultSchema returns the conventions of the reference model archives.
func DefaultSchema() Schema {
	return Schema{WeightSuffix: DefaultWeightSuffix, WarpingSuffix: DefaultWarpingSuffix}
}

// Resolve builds a ParameterSet from named arrays.
//
// The weight key must be the ONLY key ending in WeightSuffix; zero or several
// matches return a *MissingParameterError. Warping coefficients are optional:
// when no key ends in WarpingSuffix, Warping stays nil. When one does, its
// "coeffs_b"/"coeffs_c" siblings (same prefix) must exist as well. Warping
// arrays are read in row-major order regardless of their shape.
func (s Schema) Resolve(named map[string]*matrix.Dense) (ParameterSet, error) {
	key, err := uniqueKey(named, s.WeightSuffix)
	if err != nil {
		return ParameterSet{}, err
	}
	ps := ParameterSet{Weights: named[key].Copy()}

	if s.WarpingSuffix == "" {
		return ps, nil
	}
	matches := keysWithSuffix(named, s.WarpingSuffix)
	switch len(matches) {
	case 0:
		return ps, nil
	case 1:
	default:
		return ParameterSet{}, &MissingParameterError{Suffix: s.WarpingSuffix, Candidates: matches}
	}
	keyA := matches[0]
	prefix := strings.TrimSuffix(keyA, s.WarpingSuffix)
	w := Warping{A: named[keyA].RawData()}
	for _, sib := range []struct {
		suffix string
		dst    *[]float64
	}{{warpingSuffixB, &w.B}, {warpingSuffixC, &w.C}} {
		arr, ok := named[prefix+sib.suffix]
		if !ok || arr == nil {
			return ParameterSet{}, &MissingParameterError{Suffix: prefix + sib.suffix}
		}
		*sib.dst = arr.RawData()
	}
	if err = w.Validate(); err != nil {
		return ParameterSet{}, err
	}
	ps.Warping = &w

	return ps, nil
}

// uniqueKey returns the single non-nil key with the given suffix.
func uniqueKey(named map[string]*matrix.Dense, suffix string) (string, error) {
	matches := keysWithSuffix(named, suffix)
	if len(matches) != 1 {
		return "", &MissingParameterError{Suffix: suffix, Candidates: matches}
	}

	return matches[0], nil
}

// keysWithSuffix lists matching keys in sorted order so errors are reproducible.
func keysWithSuffix(named map[string]*matrix.Dense, suffix string) []string {
	var out []string
	for k, v := range named {
		if v != nil && strings.HasSuffix(k, suffix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}
