// SPDX-License-Identifier: MIT

package filters

import (
	"errors"
	"fmt"
)

var (
	// ErrReferenceLag indicates a reference lag outside [0, n_lags).
	ErrReferenceLag = errors.New("filters: reference lag out of range")

	// ErrNilBank indicates a nil *FilterBank passed to a consumer.
	ErrNilBank = errors.New("filters: nil filter bank")

	// ErrFilterIndex indicates a filter index outside [0, n_filters).
	ErrFilterIndex = errors.New("filters: filter index out of range")
)

// filtersErrorf wraps err with an operation tag, preserving it for errors.Is.
func filtersErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
