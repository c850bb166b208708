package skills

import (
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/evaluators"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/preprocessing"
	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
)

const (
	speedSkillMultiplier float64 = 1400
	speedStrainDecayBase float64 = 0.3
)

// SpeedSkill represents the skill required to press keys with regards to keeping up with the speed at which objects need to be hit.
type SpeedSkill struct {
	*strain.StrainDecay[*preprocessing.DifficultyObject]
}

func NewSpeedSkill() *SpeedSkill {
	skill := &SpeedSkill{StrainDecay: strain.NewStrainDecay[*preprocessing.DifficultyObject](strain.Speed, speedSkillMultiplier, speedStrainDecayBase)}

	skill.StrainValueOf = evaluators.EvaluateSpeed

	return skill
}
