package model

import "fmt"

// TierLevel is the Uptime Institute style classification of a configuration.
type TierLevel int

const (
	TierNA TierLevel = iota
	Tier1
	Tier2
	Tier3
	Tier4
)

// TierLevels lists every level from lowest to highest.
var TierLevels = []TierLevel{TierNA, Tier1, Tier2, Tier3, Tier4}

// String returns the label used in reports, e.g. "Tier 3".
func (t TierLevel) String() string {
	switch t {
	case TierNA:
		return "Tier NA"
	case Tier1:
		return "Tier 1"
	case Tier2:
		return "Tier 2"
	case Tier3:
		return "Tier 3"
	case Tier4:
		return "Tier 4"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TierLevel) MarshalText() ([]byte, error) {
	if t < TierNA || t > Tier4 {
		return nil, fmt.Errorf("unknown tier level %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TierLevel) UnmarshalText(b []byte) error {
	lvl, err := ParseTierLevel(string(b))
	if err != nil {
		return err
	}
	*t = lvl
	return nil
}

// ParseTierLevel converts a report label back into a TierLevel.
func ParseTierLevel(s string) (TierLevel, error) {
	for _, t := range TierLevels {
		if t.String() == s {
			return t, nil
		}
	}
	return TierNA, fmt.Errorf("unknown tier level %q", s)
}
