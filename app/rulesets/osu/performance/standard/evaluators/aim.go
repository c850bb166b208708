package evaluators

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/preprocessing"
)

const (
	aimAngleBonusBegin float64 = math.Pi / 3
	aimAngleBonusScale float64 = 90

	// timingThreshold is the strain time below which timing based normalization saturates
	timingThreshold float64 = 107
)

// EvaluateAim calculates the difficulty of aiming at current, normalized by its strain time
func EvaluateAim(current *preprocessing.DifficultyObject) float64 {
	if current.IsSpinner {
		return 0
	}

	result := 0.0

	if prev := current.Previous(0); prev != nil && current.HasAngle() && current.Angle > aimAngleBonusBegin {
		angleBonus := math.Sqrt(
			max(prev.JumpDistance-aimAngleBonusScale, 0) *
				math.Pow(math.Sin(current.Angle-aimAngleBonusBegin), 2) *
				max(current.JumpDistance-aimAngleBonusScale, 0),
		)

		result = 1.5 * applyDiminishingExp(max(0, angleBonus)) / max(timingThreshold, prev.StrainTime)
	}

	jumpDistanceExp := applyDiminishingExp(current.JumpDistance)
	travelDistanceExp := applyDiminishingExp(current.TravelDistance)

	distance := jumpDistanceExp + travelDistanceExp + math.Sqrt(travelDistanceExp*jumpDistanceExp)

	return max(
		result+distance/max(current.StrainTime, timingThreshold),
		distance/current.StrainTime,
	)
}

func applyDiminishingExp(val float64) float64 {
	return math.Pow(val, 0.99)
}
