package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/genrel/core/model"
)

func TestRender(t *testing.T) {
	run := model.Run{
		ID:     "run-1",
		Inputs: model.Inputs{DemandKW: 2500, UnitReliabilityPct: 95, ScheduledOutageHrs: 335},
		Cases: model.Table{
			{SizingCase: "unit_size_2", UnitCapacityKW: 1250, UnitsRequired: 2, UnitsInstalled: 2, SystemCapacityKW: 2500, SystemAvailability: 83.35, TierLevel: model.TierNA},
			{SizingCase: "unit_size_4", UnitCapacityKW: 625, UnitsRequired: 4, UnitsInstalled: 9, RedundantUnits: 5, SystemCapacityKW: 5600, SystemAvailability: 99.999394, TierLevel: model.Tier4},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, run))
	out := buf.String()

	assert.Contains(t, out, "Peak demand:        2500 kW")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "unit_size_4")
	assert.Contains(t, out, "99.999394")
	assert.Contains(t, out, "83.350000")
	assert.Contains(t, out, "Tier NA: 1")
	assert.Contains(t, out, "Tier 4: 1")
	assert.Contains(t, out, "Availability %")
}

func TestTable_RowOrder(t *testing.T) {
	cases := model.Table{
		{SizingCase: "unit_size_2", UnitsRequired: 2, UnitsInstalled: 2},
		{SizingCase: "unit_size_3", UnitsRequired: 3, UnitsInstalled: 3},
		{SizingCase: "unit_size_5", UnitsRequired: 5, UnitsInstalled: 10},
	}
	out := Table(cases)
	i2 := strings.Index(out, "unit_size_2")
	i3 := strings.Index(out, "unit_size_3")
	i5 := strings.Index(out, "unit_size_5")
	assert.True(t, i2 >= 0 && i2 < i3 && i3 < i5)
}
