package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/genrel/core/model"
)

var sample = model.Inputs{DemandKW: 2500, UnitReliabilityPct: 95, ScheduledOutageHrs: 335}

func TestGenerate_Order(t *testing.T) {
	table, err := Generate(sample)
	require.NoError(t, err)
	require.Len(t, table, 24)
	assert.Equal(t, Size, len(table))

	wantRequired := []int{2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5}
	for i, c := range table {
		redundancy := i % 6
		assert.Equal(t, wantRequired[i], c.UnitsRequired, "row %d", i)
		assert.Equal(t, c.UnitsRequired+redundancy, c.UnitsInstalled, "row %d", i)
		assert.Equal(t, redundancy, c.RedundantUnits, "row %d", i)
		assert.Equal(t, model.SizingCaseLabel(c.UnitsRequired), c.SizingCase)
		assert.Equal(t, sample.DemandKW, c.DemandKW)
		assert.Equal(t, sample.UnitReliabilityPct, c.UnitReliabilityPct)
		assert.Equal(t, sample.ScheduledOutageHrs, c.ScheduledOutageHrs)
		assert.Zero(t, c.SystemAvailability)
		assert.Equal(t, model.TierNA, c.TierLevel)
	}
}

func TestGenerate_DerivedCapacities(t *testing.T) {
	table, err := Generate(sample)
	require.NoError(t, err)

	checks := []struct {
		row     int
		unitCap float64
		sysCap  float64
	}{
		{0, 1250, 2500}, // k=2 n=2
		{5, 1250, 8800}, // k=2 n=7: 8750 rounds half to even
		{6, 834, 2500},  // k=3 n=3: 2502
		{7, 834, 3300},  // k=3 n=4: 3336
		{12, 625, 2500}, // k=4 n=4
		{13, 625, 3100}, // k=4 n=5: 3125
		{15, 625, 4400}, // k=4 n=7: 4375
		{18, 500, 2500}, // k=5 n=5
		{23, 500, 5000}, // k=5 n=10
	}
	for _, c := range checks {
		assert.Equal(t, c.unitCap, table[c.row].UnitCapacityKW, "row %d unit capacity", c.row)
		assert.Equal(t, c.sysCap, table[c.row].SystemCapacityKW, "row %d system capacity", c.row)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(sample)
	require.NoError(t, err)
	b, err := Generate(sample)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		in   model.Inputs
	}{
		{"zero demand", model.Inputs{DemandKW: 0, UnitReliabilityPct: 95, ScheduledOutageHrs: 335}},
		{"negative demand", model.Inputs{DemandKW: -1, UnitReliabilityPct: 95, ScheduledOutageHrs: 335}},
		{"infinite demand", model.Inputs{DemandKW: math.Inf(1), UnitReliabilityPct: 95, ScheduledOutageHrs: 335}},
		{"reliability zero", model.Inputs{DemandKW: 2500, UnitReliabilityPct: 0, ScheduledOutageHrs: 335}},
		{"reliability hundred", model.Inputs{DemandKW: 2500, UnitReliabilityPct: 100, ScheduledOutageHrs: 335}},
		{"outage zero", model.Inputs{DemandKW: 2500, UnitReliabilityPct: 95, ScheduledOutageHrs: 0}},
		{"outage beyond grid", model.Inputs{DemandKW: 2500, UnitReliabilityPct: 95, ScheduledOutageHrs: 877}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Generate(tt.in)
			assert.ErrorIs(t, err, model.ErrInvalidParameter)
			assert.Nil(t, table)
		})
	}
}

func TestRoundToHundred(t *testing.T) {
	assert.Equal(t, 200.0, RoundToHundred(250))
	assert.Equal(t, 400.0, RoundToHundred(350))
	assert.Equal(t, 300.0, RoundToHundred(251))
	assert.Equal(t, 0.0, RoundToHundred(49))
}
