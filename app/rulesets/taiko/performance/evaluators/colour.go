package evaluators

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing/colour"
)

// sigmoid is a tanh curve centered at center, spanning width on each side, between middle ± height/2.
func sigmoid(val, center, width, middle, height float64) float64 {
	return math.Tanh(math.E*-(val-center)/width)*(height/2) + middle
}

// EvaluateMonoStreak weights a streak by its position in its pattern, scaled by the pattern's own difficulty.
func EvaluateMonoStreak(monoStreak *colour.MonoStreak) float64 {
	return sigmoid(float64(monoStreak.Index), 2, 2, 0.5, 1) * EvaluateAlternatingMonoPattern(monoStreak.Parent) * 0.5
}

func EvaluateAlternatingMonoPattern(pattern *colour.AlternatingMonoPattern) float64 {
	return sigmoid(float64(pattern.Index), 2, 2, 0.5, 1) * EvaluateRepeatingHitPatterns(pattern.Parent)
}

// EvaluateRepeatingHitPatterns rewards groups whose last repetition is long ago.
func EvaluateRepeatingHitPatterns(patterns *colour.RepeatingHitPatterns) float64 {
	return 2 * (1 - sigmoid(float64(patterns.RepetitionInterval), 2, 2, 0.5, 1))
}

// EvaluateColour sums the difficulty of every colour structure current opens.
func EvaluateColour(current *preprocessing.DifficultyObject) float64 {
	data := current.Colour
	difficulty := 0.0

	if data.MonoStreak != nil && data.MonoStreak.FirstHitObject() == colour.Note(current) {
		difficulty += EvaluateMonoStreak(data.MonoStreak)
	}

	if data.AlternatingMonoPattern != nil && data.AlternatingMonoPattern.FirstHitObject() == colour.Note(current) {
		difficulty += EvaluateAlternatingMonoPattern(data.AlternatingMonoPattern)
	}

	if data.RepeatingHitPattern != nil && data.RepeatingHitPattern.FirstHitObject() == colour.Note(current) {
		difficulty += EvaluateRepeatingHitPatterns(data.RepeatingHitPattern)
	}

	return difficulty
}
