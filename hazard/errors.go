// SPDX-License-Identifier: MIT

package hazard

import "errors"

var (
	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("hazard: nil model")

	// ErrPredictionShape indicates a model returning the wrong number of values.
	ErrPredictionShape = errors.New("hazard: model returned wrong number of predictions")
)
