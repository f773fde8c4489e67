package reliability

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/kilianp07/genrel/core/model"
)

func TestComputeAvailability_KnownScenario(t *testing.T) {
	got, err := ComputeAvailability(4, 9, 95, 335)
	require.NoError(t, err)
	assert.InDelta(t, 99.999394, got, 1e-4)
}

func TestComputeAvailability_NoRedundancyClosedForm(t *testing.T) {
	for n := 2; n <= 5; n++ {
		p := 0.95
		hrs := 335.0
		got, err := ComputeAvailability(n, n, p*100, hrs)
		require.NoError(t, err)
		// With k = n the maintenance regime can never serve the load.
		want := math.Pow(p, float64(n)) * (model.HoursPerYear - float64(n)*hrs) / model.HoursPerYear * 100
		assert.InDelta(t, want, got, 1e-9, "n=%d", n)
	}
}

func TestComputeAvailability_Range(t *testing.T) {
	for _, pct := range []float64{1, 25, 50, 90, 99.9} {
		for k := 1; k <= 5; k++ {
			for n := k; n <= k+5; n++ {
				got, err := ComputeAvailability(k, n, pct, 168)
				require.NoError(t, err)
				assert.Greater(t, got, 0.0)
				assert.LessOrEqual(t, got, 100.0)
			}
		}
	}
}

func TestComputeAvailability_MonotonicInUnitsInstalled(t *testing.T) {
	for k := 2; k <= 5; k++ {
		prev := 0.0
		for n := k; n <= k+5; n++ {
			got, err := ComputeAvailability(k, n, 95, 335)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, prev, "k=%d n=%d", k, n)
			prev = got
		}
	}
}

func TestComputeAvailability_MonotonicInReliability(t *testing.T) {
	prev := 0.0
	for pct := 5.0; pct < 100; pct += 5 {
		got, err := ComputeAvailability(3, 6, pct, 200)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "pct=%v", pct)
		prev = got
	}
}

func TestComputeAvailability_InvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		k, n int
		pct  float64
		hrs  float64
	}{
		{"k zero", 0, 3, 95, 100},
		{"k above n", 4, 3, 95, 100},
		{"reliability zero", 2, 3, 0, 100},
		{"reliability hundred", 2, 3, 100, 100},
		{"reliability nan", 2, 3, math.NaN(), 100},
		{"hours zero", 2, 3, 95, 0},
		{"hours negative", 2, 3, 95, -5},
		{"maintenance exceeds year", 2, 10, 95, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAvailability(tt.k, tt.n, tt.pct, tt.hrs)
			assert.ErrorIs(t, err, model.ErrInvalidParameter)
		})
	}
}

func TestSurvivalProbability(t *testing.T) {
	got, err := SurvivalProbability(2, 3, 0.9)
	require.NoError(t, err)
	// 3*0.81*0.1 + 0.729
	assert.InDelta(t, 0.972, got, 1e-12)

	got, err = SurvivalProbability(0, 4, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	got, err = SurvivalProbability(5, 4, 0.3)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestSurvivalProbability_Overflow(t *testing.T) {
	_, err := SurvivalProbability(1, MaxUnits+1, 0.5)
	assert.ErrorIs(t, err, model.ErrComputation)
}

func TestBinomialExactUpToMaxUnits(t *testing.T) {
	for i := 0; i <= MaxUnits; i++ {
		want := new(big.Int).Binomial(MaxUnits, int64(i))
		require.True(t, want.IsInt64())
		assert.Equal(t, want.Int64(), int64(combin.Binomial(MaxUnits, i)), "C(%d,%d)", MaxUnits, i)
	}
}

func TestSurvivalProbability_MaxUnitsBoundary(t *testing.T) {
	got, err := SurvivalProbability(0, 61, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	_, err = SurvivalProbability(0, 62, 0.5)
	assert.ErrorIs(t, err, model.ErrComputation)
}

func TestComputeAvailability_TooManyUnits(t *testing.T) {
	_, err := ComputeAvailability(1, 62, 50, 100)
	assert.ErrorIs(t, err, model.ErrComputation)

	got, err := ComputeAvailability(1, 61, 50, 100)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got, 1e-9)
}
