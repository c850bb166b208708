package skills

import (
	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/evaluators"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing"
)

const (
	staminaSkillMultiplier float64 = 1.1
	staminaStrainDecayBase float64 = 0.4
)

type StaminaSkill struct {
	*strain.StrainDecay[*preprocessing.DifficultyObject]
}

func NewStaminaSkill() *StaminaSkill {
	skill := &StaminaSkill{StrainDecay: strain.NewStrainDecay[*preprocessing.DifficultyObject](strain.Stamina, staminaSkillMultiplier, staminaStrainDecayBase)}

	skill.StrainValueOf = evaluators.EvaluateStamina

	return skill
}
