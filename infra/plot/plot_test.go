package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/genrel/core/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRender_WritesThreeCharts(t *testing.T) {
	run := model.Run{ID: "r", Cases: model.Table{
		{DemandKW: 1500, SystemCapacityKW: 1000, SystemAvailability: 95, TierLevel: model.Tier1, UnitCapacityKW: 500, UnitsInstalled: 2},
		{DemandKW: 1500, SystemCapacityKW: 2000, SystemAvailability: 90, TierLevel: model.Tier2, UnitCapacityKW: 500, UnitsInstalled: 4},
		{DemandKW: 1500, SystemCapacityKW: 1500, SystemAvailability: 85, TierLevel: model.Tier3, UnitCapacityKW: 500, UnitsInstalled: 3},
		{DemandKW: 1500, SystemCapacityKW: 2500, SystemAvailability: 92, TierLevel: model.Tier4, UnitCapacityKW: 500, UnitsInstalled: 5},
	}}
	dir := filepath.Join(t.TempDir(), "outputs")
	paths, err := Render(dir, run)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i, name := range []string{ScatterFile, BoxPlotFile, SubplotFile} {
		assert.Equal(t, filepath.Join(dir, name), paths[i])
		data, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a PNG", name)
	}
}

func TestRender_FullGrid(t *testing.T) {
	var table model.Table
	tiers := []model.TierLevel{model.TierNA, model.Tier1, model.Tier3, model.Tier4, model.Tier4, model.Tier4}
	for k := 2; k <= 5; k++ {
		for r := 0; r <= 5; r++ {
			table = append(table, model.Case{
				SizingCase:         model.SizingCaseLabel(k),
				DemandKW:           2500,
				UnitCapacityKW:     float64(2500 / k),
				UnitsRequired:      k,
				UnitsInstalled:     k + r,
				SystemCapacityKW:   float64(2500/k) * float64(k+r),
				SystemAvailability: 80 + float64(r)*4,
				TierLevel:          tiers[r],
			})
		}
	}
	paths, err := Render(t.TempDir(), model.Run{Cases: table})
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestRender_Empty(t *testing.T) {
	_, err := Render(t.TempDir(), model.Run{})
	assert.Error(t, err)
}
