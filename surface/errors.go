// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
)

var (
	// ErrBadResolution indicates a grid resolution below one.
	ErrBadResolution = errors.New("surface: grid resolution must be ≥ 1")

	// ErrBadDims indicates slice dimensions outside the bank or equal to each other.
	ErrBadDims = errors.New("surface: slice dimensions must be distinct filter indices")

	// ErrBadRange indicates a non-finite axis range.
	ErrBadRange = errors.New("surface: axis range must be finite")

	// ErrPredictionShape indicates a model returning the wrong number of means.
	ErrPredictionShape = errors.New("surface: model returned wrong number of predictions")

	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("surface: nil model")
)

func surfaceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
