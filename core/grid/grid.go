// Package grid builds the sizing and redundancy sweep evaluated by a study.
package grid

import (
	"fmt"
	"math"

	"github.com/kilianp07/genrel/core/model"
)

const (
	// MinRequired and MaxRequired bound the number of units needed to carry
	// the peak load.
	MinRequired = 2
	MaxRequired = 5
	// MaxRedundancy is the largest number of spare units considered.
	MaxRedundancy = 5
	// MaxInstalled is the largest facility of the grid.
	MaxInstalled = MaxRequired + MaxRedundancy
)

// Size is the number of cases produced for one set of inputs.
const Size = (MaxRequired - MinRequired + 1) * (MaxRedundancy + 1)

// Generate returns the sweep ordered by units required, then by redundancy,
// both ascending. Availability and tier are left for the study pipeline.
func Generate(in model.Inputs) (model.Table, error) {
	if err := ValidateInputs(in); err != nil {
		return nil, err
	}
	table := make(model.Table, 0, Size)
	for k := MinRequired; k <= MaxRequired; k++ {
		unitCap := math.Ceil(in.DemandKW / float64(k))
		for r := 0; r <= MaxRedundancy; r++ {
			n := k + r
			table = append(table, model.Case{
				SizingCase:         model.SizingCaseLabel(k),
				DemandKW:           in.DemandKW,
				UnitCapacityKW:     unitCap,
				UnitsRequired:      k,
				UnitsInstalled:     n,
				UnitReliabilityPct: in.UnitReliabilityPct,
				ScheduledOutageHrs: in.ScheduledOutageHrs,
				SystemCapacityKW:   RoundToHundred(unitCap * float64(n)),
				RedundantUnits:     n - k,
			})
		}
	}
	return table, nil
}

// RoundToHundred rounds x to the nearest multiple of 100, ties to even.
func RoundToHundred(x float64) float64 {
	return math.RoundToEven(x/100) * 100
}

// ValidateInputs checks the operator inputs, including that the largest
// facility of the grid can fit its maintenance in one year.
func ValidateInputs(in model.Inputs) error {
	if err := model.ValidateDemand(in.DemandKW); err != nil {
		return err
	}
	if err := model.ValidateReliability(in.UnitReliabilityPct); err != nil {
		return err
	}
	return ValidateOutageHours(in.ScheduledOutageHrs)
}

// ValidateOutageHours checks per-unit outage hours against the grid bound.
func ValidateOutageHours(hrs float64) error {
	if err := model.ValidateOutageHours(hrs); err != nil {
		return err
	}
	if limit := model.HoursPerYear / MaxInstalled; hrs > limit {
		return fmt.Errorf("%w: outage hours must not exceed %v so that %d units fit their maintenance in one year, got %v",
			model.ErrInvalidParameter, limit, MaxInstalled, hrs)
	}
	return nil
}
