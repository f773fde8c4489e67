package reliability

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/kilianp07/genrel/core/model"
)

// MaxUnits bounds n so that combin.Binomial stays exact. It multiplies
// before dividing, so the intermediate product overflows int64 from n = 62
// even though C(62, 31) itself would fit.
const MaxUnits = 61

// ComputeAvailability returns the expected annual availability, in percent,
// of a system needing k of n units when each unit is up with probability
// unitReliabilityPct/100 and spends scheduledOutageHrs per year in planned
// maintenance.
func ComputeAvailability(k, n int, unitReliabilityPct, scheduledOutageHrs float64) (float64, error) {
	if err := validate(k, n, unitReliabilityPct, scheduledOutageHrs); err != nil {
		return 0, err
	}
	p := unitReliabilityPct / 100

	timeOutage := float64(n) * scheduledOutageHrs
	timeNoOutage := model.HoursPerYear - timeOutage

	noOutage, err := SurvivalProbability(k, n, p)
	if err != nil {
		return 0, err
	}
	oneOutage := 0.0
	if k <= n-1 {
		if oneOutage, err = SurvivalProbability(k, n-1, p); err != nil {
			return 0, err
		}
	}

	avail := (noOutage*timeNoOutage + oneOutage*timeOutage) / model.HoursPerYear * 100
	if math.IsNaN(avail) || math.IsInf(avail, 0) {
		return 0, fmt.Errorf("%w: non-finite availability for k=%d n=%d", model.ErrComputation, k, n)
	}
	if avail <= 0 {
		return 0, fmt.Errorf("%w: availability underflow for k=%d n=%d p=%v", model.ErrComputation, k, n, p)
	}
	// Rounding in the weighted sum can overshoot by an ulp.
	return math.Min(avail, 100), nil
}

// SurvivalProbability returns P(X >= k) for X ~ Binomial(n, p), i.e. the
// probability that at least k of n independent units are up.
func SurvivalProbability(k, n int, p float64) (float64, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("%w: negative unit count k=%d n=%d", model.ErrInvalidParameter, k, n)
	}
	if n > MaxUnits {
		return 0, fmt.Errorf("%w: binomial coefficients overflow for n=%d (max %d)", model.ErrComputation, n, MaxUnits)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: probability %v outside [0,1]", model.ErrInvalidParameter, p)
	}
	var sum float64
	for i := k; i <= n; i++ {
		term := float64(combin.Binomial(n, i)) * math.Pow(p, float64(i)) * math.Pow(1-p, float64(n-i))
		if math.IsNaN(term) || math.IsInf(term, 0) {
			return 0, fmt.Errorf("%w: non-finite binomial term C(%d,%d)", model.ErrComputation, n, i)
		}
		sum += term
	}
	return sum, nil
}

func validate(k, n int, pct, hrs float64) error {
	if k < 1 {
		return fmt.Errorf("%w: units required must be at least 1, got %d", model.ErrInvalidParameter, k)
	}
	if k > n {
		return fmt.Errorf("%w: units required %d exceeds units installed %d", model.ErrInvalidParameter, k, n)
	}
	if err := model.ValidateReliability(pct); err != nil {
		return err
	}
	if err := model.ValidateOutageHours(hrs); err != nil {
		return err
	}
	// Only one unit is modelled in maintenance at a time, so the combined
	// maintenance window must fit in the year.
	if float64(n)*hrs > model.HoursPerYear {
		return fmt.Errorf("%w: %d units x %v outage hours exceeds %v hours per year",
			model.ErrInvalidParameter, n, hrs, model.HoursPerYear)
	}
	return nil
}
