package settings

import (
	"fmt"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/catch"
)

// SnapTable returns the default catch snap table with the configured overrides applied.
func (c Config) SnapTable() (catch.SnapTable, error) {
	table := catch.DefaultSnapTable()

	for movementName, tiers := range c.Catch.Snap {
		movement, err := catch.ParseMovementType(movementName)
		if err != nil {
			return nil, fmt.Errorf("catch snap: %w", err)
		}

		if table[movement] == nil {
			table[movement] = make(map[difficulty.Tier]float64)
		}

		for tierName, ms := range tiers {
			tier, err := difficulty.ParseTier(tierName)
			if err != nil {
				return nil, fmt.Errorf("catch snap %s: %w", movementName, err)
			}

			if ms <= 0 {
				return nil, fmt.Errorf("catch snap %s.%s must be positive, got %v", movementName, tierName, ms)
			}

			table[movement][tier] = ms
		}
	}

	return table, nil
}
