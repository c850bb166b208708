package evaluators

import "github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing"

// speedBonus caps at 600bpm 1/4, a 25ms note interval and a 50ms key interval
func speedBonus(notePairDuration float64) float64 {
	return 30 / max(notePairDuration, 25)
}

// EvaluateStamina rates how fast the key used for current is pressed again, which is two notes of the same colour back.
func EvaluateStamina(current *preprocessing.DifficultyObject) float64 {
	if !current.IsCircle {
		return 0
	}

	keyPrevious := current.PreviousMono(1)
	if keyPrevious == nil {
		return 0
	}

	return 0.5 + speedBonus(current.StartTime-keyPrevious.StartTime)
}
