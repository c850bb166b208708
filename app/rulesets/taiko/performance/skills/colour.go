package skills

import (
	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/evaluators"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing"
)

const (
	colourSkillMultiplier float64 = 0.12

	// decays slower than the other skills since only the first note of each structure carries difficulty
	colourStrainDecayBase float64 = 0.8
)

type ColourSkill struct {
	*strain.StrainDecay[*preprocessing.DifficultyObject]
}

func NewColourSkill() *ColourSkill {
	skill := &ColourSkill{StrainDecay: strain.NewStrainDecay[*preprocessing.DifficultyObject](strain.Colour, colourSkillMultiplier, colourStrainDecayBase)}

	skill.StrainValueOf = evaluators.EvaluateColour

	return skill
}
