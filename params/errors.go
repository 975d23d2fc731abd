// SPDX-License-Identifier: MIT

package params

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingParameter is matched (errors.Is) by every *MissingParameterError.
	ErrMissingParameter = errors.New("params: missing or ambiguous parameter")

	// ErrNilWeights indicates a ParameterSet without a projection-weight matrix.
	ErrNilWeights = errors.New("params: projection weights are nil")

	// ErrWarpingShape indicates warping coefficient vectors of unequal or zero length.
	ErrWarpingShape = errors.New("params: warping coefficients must be non-empty and equal length")
)

// MissingParameterError reports a named lookup that matched zero or several keys.
// Callers must not proceed with a guessed parameter.
type MissingParameterError struct {
	Suffix     string   // name convention that was searched for
	Candidates []string // matching keys, sorted; empty when nothing matched
}

// Error implements error.
func (e *MissingParameterError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("params: no parameter ends with %q", e.Suffix)
	}

	return fmt.Sprintf("params: %d parameters end with %q: %s",
		len(e.Candidates), e.Suffix, strings.Join(e.Candidates, ", "))
}

// Unwrap lets errors.Is(err, ErrMissingParameter) succeed.
func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }
