package skills

import (
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/evaluators"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/preprocessing"
	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
)

const (
	aimSkillMultiplier float64 = 26.25
	aimStrainDecayBase float64 = 0.15
)

// AimSkill represents the skill required to aim at every object with a uniform circle size and normalized distances.
type AimSkill struct {
	*strain.StrainDecay[*preprocessing.DifficultyObject]
}

func NewAimSkill() *AimSkill {
	skill := &AimSkill{StrainDecay: strain.NewStrainDecay[*preprocessing.DifficultyObject](strain.Aim, aimSkillMultiplier, aimStrainDecayBase)}

	skill.StrainValueOf = evaluators.EvaluateAim

	return skill
}
