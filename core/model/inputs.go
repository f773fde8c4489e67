package model

import (
	"fmt"
	"math"
)

// HoursPerYear is the length of the modelled operating year.
const HoursPerYear = 8760.0

// Inputs holds the three scalars supplied by the operator for one study.
type Inputs struct {
	DemandKW           float64 `json:"demand_kW"`
	UnitReliabilityPct float64 `json:"unit_reliability_pct"`
	ScheduledOutageHrs float64 `json:"unit_scheduled_outage_hrs"`
}

// Validate checks every scalar against its domain.
func (in Inputs) Validate() error {
	if err := ValidateDemand(in.DemandKW); err != nil {
		return err
	}
	if err := ValidateReliability(in.UnitReliabilityPct); err != nil {
		return err
	}
	return ValidateOutageHours(in.ScheduledOutageHrs)
}

// ValidateDemand requires a finite, strictly positive peak load.
func ValidateDemand(kw float64) error {
	if math.IsNaN(kw) || math.IsInf(kw, 0) || kw <= 0 {
		return fmt.Errorf("%w: peak demand must be a positive number, got %v", ErrInvalidParameter, kw)
	}
	return nil
}

// ValidateReliability requires a percentage strictly between 0 and 100.
func ValidateReliability(pct float64) error {
	if math.IsNaN(pct) || pct <= 0 || pct >= 100 {
		return fmt.Errorf("%w: reliability must be between 0 and 100 percent, got %v", ErrInvalidParameter, pct)
	}
	return nil
}

// ValidateOutageHours requires a finite, strictly positive number of hours
// that fits in one year.
func ValidateOutageHours(hrs float64) error {
	if math.IsNaN(hrs) || math.IsInf(hrs, 0) || hrs <= 0 {
		return fmt.Errorf("%w: outage hours must be greater than 0, got %v", ErrInvalidParameter, hrs)
	}
	if hrs > HoursPerYear {
		return fmt.Errorf("%w: outage hours must not exceed %v, got %v", ErrInvalidParameter, HoursPerYear, hrs)
	}
	return nil
}
