// Package tier maps an availability percentage to an Uptime Institute style
// tier level.
package tier

import "github.com/kilianp07/genrel/core/model"

// Threshold is the inclusive lower availability bound of a tier.
type Threshold struct {
	Level  model.TierLevel
	MinPct float64
}

var thresholds = []Threshold{
	{Level: model.Tier4, MinPct: 99.995},
	{Level: model.Tier3, MinPct: 99.982},
	{Level: model.Tier2, MinPct: 99.741},
	{Level: model.Tier1, MinPct: 99.671},
}

// Thresholds returns the tier bounds, highest first.
func Thresholds() []Threshold {
	out := make([]Threshold, len(thresholds))
	copy(out, thresholds)
	return out
}

// Classify returns the highest tier whose bound availabilityPct reaches.
// Anything below Tier 1, NaN included, is Tier NA.
func Classify(availabilityPct float64) model.TierLevel {
	for _, t := range thresholds {
		if availabilityPct >= t.MinPct {
			return t.Level
		}
	}
	return model.TierNA
}
