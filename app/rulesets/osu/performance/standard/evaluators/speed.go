package evaluators

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/preprocessing"
)

const (
	singleSpacingThreshold float64 = 125
	speedAngleBonusBegin   float64 = 5 * math.Pi / 6

	// ~200 BPM 1/4 streams
	minSpeedBonus float64 = 75

	// ~330 BPM 1/4 streams
	maxSpeedBonus float64 = 45

	speedBalancingFactor float64 = 40
)

// EvaluateSpeed calculates the difficulty of tapping current
func EvaluateSpeed(current *preprocessing.DifficultyObject) float64 {
	if current.IsSpinner {
		return 0
	}

	distance := min(singleSpacingThreshold, current.TravelDistance+current.JumpDistance)
	deltaTime := max(maxSpeedBonus, current.DeltaTime)

	speedBonus := 1.0
	if deltaTime < minSpeedBonus {
		speedBonus = 1 + math.Pow((minSpeedBonus-deltaTime)/speedBalancingFactor, 2)
	}

	angleBonus := 1.0

	if current.HasAngle() && current.Angle < speedAngleBonusBegin {
		angleBonus = 1 + math.Pow(math.Sin(1.5*(speedAngleBonusBegin-current.Angle)), 2)/3.57

		if current.Angle < math.Pi/2 {
			angleBonus = 1.28

			// close spacing makes sharp angles easier
			if distance < 90 {
				closeness := min((90-distance)/10, 1)

				if current.Angle < math.Pi/4 {
					angleBonus += (1 - angleBonus) * closeness
				} else {
					angleBonus += (1 - angleBonus) * closeness * math.Sin((math.Pi/2-current.Angle)/(math.Pi/4))
				}
			}
		}
	}

	return (1 + (speedBonus-1)*0.75) * angleBonus * (0.95 + speedBonus*math.Pow(distance/singleSpacingThreshold, 3.5)) / current.StrainTime
}
