// SPDX-License-Identifier: MIT

package trials

import (
	"errors"
	"fmt"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// Column names.
const (
	ColTrial    = "Trial"
	ColRT       = "RT"
	ColSig      = "Sig"
	ColHazard   = "Hazard"
	ColOutcome  = "Outcome"
	ColEarly    = "Early"
	ColHit      = "Hit"
	ColRTChange = "RTChange"
	ColStim     = "Stim"
)

// Hazard block and outcome labels.
const (
	BlockSplit    = "split"
	BlockNonSplit = "nonsplit"
	OutcomeHit    = "Hit"
	OutcomeFA     = "FA"
	OutcomeMiss   = "Miss"
)

var (
	// ErrBadShape indicates a negative row count or an empty stimulus window.
	ErrBadShape = errors.New("trials: rows must be ≥ 0 and steps ≥ 1")

	// ErrMissingColumn indicates a table without a required column.
	ErrMissingColumn = errors.New("trials: missing column")

	// ErrRow indicates a row index outside the table.
	ErrRow = errors.New("trials: row out of range")

	// ErrTraceLength indicates a trace whose length differs from the Stim cell.
	ErrTraceLength = errors.New("trials: trace length mismatch")
)

// Schema returns the column layout of a trial table with nSteps stimulus steps.
func Schema(nSteps int) etable.Schema {
	return etable.Schema{
		{ColTrial, etensor.INT64, nil, nil},
		{ColRT, etensor.FLOAT64, nil, nil},
		{ColSig, etensor.FLOAT64, nil, nil},
		{ColHazard, etensor.STRING, nil, nil},
		{ColOutcome, etensor.STRING, nil, nil},
		{ColEarly, etensor.FLOAT64, nil, nil},
		{ColHit, etensor.FLOAT64, nil, nil},
		{ColRTChange, etensor.FLOAT64, nil, nil},
		{ColStim, etensor.FLOAT64, []int{nSteps}, []string{"Step"}},
	}
}

// NewTable allocates a trial table with rows rows and nSteps stimulus steps.
func NewTable(name string, rows, nSteps int) (*etable.Table, error) {
	if rows < 0 || nSteps < 1 {
		return nil, fmt.Errorf("NewTable(%d, %d): %w", rows, nSteps, ErrBadShape)
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", name)
	dt.SetFromSchema(Schema(nSteps), rows)

	return dt, nil
}

// requireCols reports the first name not present in dt.
func requireCols(dt *etable.Table, names ...string) error {
	for _, nm := range names {
		if dt.ColIdx(nm) < 0 {
			return fmt.Errorf("%q: %w", nm, ErrMissingColumn)
		}
	}

	return nil
}

func checkRow(dt *etable.Table, row int) error {
	if row < 0 || row >= dt.Rows {
		return fmt.Errorf("row %d of %d: %w", row, dt.Rows, ErrRow)
	}

	return nil
}

// Trace returns a copy of the stimulus trace stored in row.
func Trace(dt *etable.Table, row int) ([]float64, error) {
	if err := requireCols(dt, ColStim); err != nil {
		return nil, fmt.Errorf("Trace: %w", err)
	}
	if err := checkRow(dt, row); err != nil {
		return nil, fmt.Errorf("Trace: %w", err)
	}
	cell := dt.CellTensor(ColStim, row)
	out := make([]float64, cell.Len())
	for i := range out {
		out[i] = cell.FloatVal1D(i)
	}

	return out, nil
}

// SetTrace stores trace in row; its length must equal the Stim cell size.
func SetTrace(dt *etable.Table, row int, trace []float64) error {
	if err := requireCols(dt, ColStim); err != nil {
		return fmt.Errorf("SetTrace: %w", err)
	}
	if err := checkRow(dt, row); err != nil {
		return fmt.Errorf("SetTrace: %w", err)
	}
	if n := dt.CellTensor(ColStim, row).Len(); n != len(trace) {
		return fmt.Errorf("SetTrace: %d values for %d steps: %w", len(trace), n, ErrTraceLength)
	}
	for i, v := range trace {
		dt.SetCellTensorFloat1D(ColStim, row, i, v)
	}

	return nil
}
