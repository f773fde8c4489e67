package model

import (
	"fmt"
	"time"
)

// Case is one candidate facility configuration of the sizing grid.
type Case struct {
	SizingCase         string    `json:"sizing_case"`
	DemandKW           float64   `json:"demand_kW"`
	UnitCapacityKW     float64   `json:"unit_capacity_kW"`
	UnitsRequired      int       `json:"units_required"`
	UnitsInstalled     int       `json:"units_installed"`
	UnitReliabilityPct float64   `json:"unit_reliability_pct"`
	ScheduledOutageHrs float64   `json:"unit_scheduled_outage_hrs"`
	SystemCapacityKW   float64   `json:"system_capacity_kW"`
	RedundantUnits     int       `json:"redundant_units"`
	SystemAvailability float64   `json:"system_availability"`
	TierLevel          TierLevel `json:"tier_level"`
}

// SizingCaseLabel returns the group label for configurations needing k units.
func SizingCaseLabel(k int) string {
	return fmt.Sprintf("unit_size_%d", k)
}

// Table is the ordered result grid of one study.
type Table []Case

// Columns lists the table column names in report order.
var Columns = []string{
	"sizing_case",
	"demand_kW",
	"unit_capacity_kW",
	"units_required",
	"units_installed",
	"unit_reliability_pct",
	"unit_scheduled_outage_hrs",
	"system_capacity_kW",
	"redundant_units",
	"system_availability",
	"tier_level",
}

// ByTier returns the cases classified at the given tier, in table order.
func (t Table) ByTier(lvl TierLevel) Table {
	var out Table
	for _, c := range t {
		if c.TierLevel == lvl {
			out = append(out, c)
		}
	}
	return out
}

// MaxSystemCapacity returns the largest system capacity in the table.
func (t Table) MaxSystemCapacity() float64 {
	var m float64
	for _, c := range t {
		if c.SystemCapacityKW > m {
			m = c.SystemCapacityKW
		}
	}
	return m
}

// Run is a finished study handed to the reporting sinks. Run metadata is kept
// beside the table so the table depends on the inputs only.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Inputs    Inputs    `json:"inputs"`
	Cases     Table     `json:"cases"`
}
