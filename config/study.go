package config

import (
	"github.com/kilianp07/genrel/core/grid"
	"github.com/kilianp07/genrel/core/model"
)

// StudyConfig pre-fills the operator inputs. Zero values are asked for
// interactively.
type StudyConfig struct {
	DemandKW           float64 `json:"demand_kw"`
	UnitReliabilityPct float64 `json:"unit_reliability_pct"`
	ScheduledOutageHrs float64 `json:"scheduled_outage_hrs"`
}

// Inputs converts the section to model inputs.
func (c StudyConfig) Inputs() model.Inputs {
	return model.Inputs{
		DemandKW:           c.DemandKW,
		UnitReliabilityPct: c.UnitReliabilityPct,
		ScheduledOutageHrs: c.ScheduledOutageHrs,
	}
}

// Validate checks the values that are set.
func (c StudyConfig) Validate() error {
	if c.DemandKW != 0 {
		if err := model.ValidateDemand(c.DemandKW); err != nil {
			return err
		}
	}
	if c.UnitReliabilityPct != 0 {
		if err := model.ValidateReliability(c.UnitReliabilityPct); err != nil {
			return err
		}
	}
	if c.ScheduledOutageHrs != 0 {
		if err := grid.ValidateOutageHours(c.ScheduledOutageHrs); err != nil {
			return err
		}
	}
	return nil
}
