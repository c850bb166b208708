package standard

import (
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/preprocessing"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/skills"
	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
)

type SkillsProcessor struct {
	Aim   *skills.AimSkill
	Speed *skills.SpeedSkill
}

func NewSkillsProcessor() *SkillsProcessor {
	return &SkillsProcessor{
		Aim:   skills.NewAimSkill(),
		Speed: skills.NewSpeedSkill(),
	}
}

// Skills lists the skills in the order they are fed.
func (p *SkillsProcessor) Skills() []strain.Skill[*preprocessing.DifficultyObject] {
	return []strain.Skill[*preprocessing.DifficultyObject]{p.Aim, p.Speed}
}
