package catch

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
)

// SnapTable holds the basic snap duration in ms per movement type and tier.
type SnapTable map[MovementType]map[difficulty.Tier]float64

// DefaultSnapTable is the reference table. Easy, Expert and Ultra have no entries and never count as higher-snapped.
func DefaultSnapTable() SnapTable {
	return SnapTable{
		Dash: {
			difficulty.Normal: 250,
			difficulty.Hard:   125,
			difficulty.Insane: 125,
		},
		Hyperdash: {
			difficulty.Hard:   250,
			difficulty.Insane: 125,
		},
	}
}

// IsHigherSnapped reports whether the movement from current to next is snapped tighter than the tier's basic
// snap while staying within half of it.
func (t SnapTable) IsHigherSnapped(current, next *Object, tier difficulty.Tier) bool {
	basic, ok := t[current.MovementType][tier]
	if !ok {
		return false
	}

	half := math.Floor(basic / 2)
	delta := math.Abs(next.Time - current.Time)

	return half <= delta && delta < basic
}

// IsHigherSnapped checks against DefaultSnapTable.
func IsHigherSnapped(current, next *Object, tier difficulty.Tier) bool {
	return DefaultSnapTable().IsHigherSnapped(current, next, tier)
}
