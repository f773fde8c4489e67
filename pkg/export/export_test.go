package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/genrel/core/model"
)

func sampleTable() model.Table {
	return model.Table{
		{
			SizingCase: "unit_size_2", DemandKW: 2500, UnitCapacityKW: 1250, UnitsRequired: 2, UnitsInstalled: 2,
			UnitReliabilityPct: 95, ScheduledOutageHrs: 335, SystemCapacityKW: 2500, RedundantUnits: 0,
			SystemAvailability: 83.35, TierLevel: model.TierNA,
		},
		{
			SizingCase: "unit_size_4", DemandKW: 2500, UnitCapacityKW: 625, UnitsRequired: 4, UnitsInstalled: 9,
			UnitReliabilityPct: 95, ScheduledOutageHrs: 335, SystemCapacityKW: 5600, RedundantUnits: 5,
			SystemAvailability: 99.999394, TierLevel: model.Tier4,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "sizing_case,demand_kW,unit_capacity_kW,units_required,units_installed,unit_reliability_pct,"+
		"unit_scheduled_outage_hrs,system_capacity_kW,redundant_units,system_availability,tier_level", lines[0])
	assert.Equal(t, "unit_size_2,2500,1250,2,2,95,335,2500,0,83.35,Tier NA", lines[1])
	assert.Equal(t, "unit_size_4,2500,625,4,9,95,335,5600,5,99.999394,Tier 4", lines[2])
}

func TestReadCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))
	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), got)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)

	bad := strings.Join(model.Columns, ",") + "\nunit_size_2,x,1250,2,2,95,335,2500,0,83.35,Tier NA\n"
	_, err = ReadCSV(strings.NewReader(bad))
	assert.Error(t, err)

	bad = strings.Join(model.Columns, ",") + "\nunit_size_2,2500,1250,2,2,95,335,2500,0,83.35,Tier 9\n"
	_, err = ReadCSV(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	run := model.Run{
		ID:        "run-1",
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Inputs:    model.Inputs{DemandKW: 2500, UnitReliabilityPct: 95, ScheduledOutageHrs: 335},
		Cases:     sampleTable(),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, run))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["id"])
	cases := decoded["cases"].([]any)
	require.Len(t, cases, 2)
	assert.Equal(t, "Tier 4", cases[1].(map[string]any)["tier_level"])

	var back model.Run
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, run, back)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "outputs", "results.csv")
	require.NoError(t, WriteCSVFile(csvPath, sampleTable()))
	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	got, err := ReadCSV(f)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), got)

	jsonPath := filepath.Join(dir, "nested", "run.json")
	require.NoError(t, WriteJSONFile(jsonPath, model.Run{ID: "x", Cases: sampleTable()}))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "x"`)
}
