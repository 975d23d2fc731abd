// SPDX-License-Identifier: MIT

// Package hazard turns a trial's stimulus trace into model inputs and reads
// back the per-step lick hazard.
//
// The model's latent mean is a logit; Predict maps it through the logistic
// function to a per-step lick probability and, for models that expose their
// additive kernel components, keeps each component's contribution alongside.
package hazard

import (
	"fmt"
	"math"

	"github.com/katalvlaran/projgp/gpmodel"
	"github.com/katalvlaran/projgp/matrix"
	"github.com/katalvlaran/projgp/stimulus"
)

const (
	opInputs  = "Inputs"
	opPredict = "Predict"
)

// Component is one additive kernel contribution over a trial.
type Component struct {
	Name   string
	Values []float64
}

// Trajectory is the model output over the T steps of one trial.
type Trajectory struct {
	Logit       []float64   // latent mean per step
	Probability []float64   // expit(Logit)
	Components  []Component // nil unless the model is a gpmodel.PartialPredictor
}

// Inputs builds the T native input rows of a trial: the lag window of trace,
// the step index as time, then the covariates.
func Inputs(trace []float64, nLags int, cov gpmodel.Covariates) (*matrix.Dense, error) {
	d, err := stimulus.DesignMatrix(trace, nLags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInputs, err)
	}
	X, err := gpmodel.NewInputs(len(trace), nLags, cov)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInputs, err)
	}
	var v float64
	for t := range trace {
		for k := 0; k < nLags; k++ {
			if v, err = d.At(t, k); err != nil {
				return nil, fmt.Errorf("%s: %w", opInputs, err)
			}
			if err = X.Set(t, k, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opInputs, err)
			}
		}
		if err = X.Set(t, nLags+gpmodel.OffsetTime, float64(t)); err != nil {
			return nil, fmt.Errorf("%s: %w", opInputs, err)
		}
	}

	return X, nil
}

// Predict evaluates model on X and converts the latent mean to probabilities.
func Predict(model gpmodel.PredictiveModel, X matrix.Matrix) (*Trajectory, error) {
	if model == nil {
		return nil, fmt.Errorf("%s: %w", opPredict, ErrNilModel)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opPredict, err)
	}
	logit, err := model.PredictMean(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPredict, err)
	}
	if len(logit) != X.Rows() {
		return nil, fmt.Errorf("%s: %d means for %d rows: %w", opPredict, len(logit), X.Rows(), ErrPredictionShape)
	}
	tr := &Trajectory{Logit: logit, Probability: make([]float64, len(logit))}
	for i, v := range logit {
		tr.Probability[i] = Expit(v)
	}

	pp, ok := model.(gpmodel.PartialPredictor)
	if !ok {
		return tr, nil
	}
	parts, err := pp.PredictPartial(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPredict, err)
	}
	names := pp.Components()
	if len(parts) != len(names) {
		return nil, fmt.Errorf("%s: %d components, %d names: %w", opPredict, len(parts), len(names), ErrPredictionShape)
	}
	tr.Components = make([]Component, len(parts))
	for c := range parts {
		tr.Components[c] = Component{Name: names[c], Values: parts[c]}
	}

	return tr, nil
}

// Expit is the logistic function 1/(1+e^{-x}), evaluated without overflow.
func Expit(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}
