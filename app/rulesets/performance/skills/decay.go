package skills

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/preprocessing"
)

// StrainDecay decays the running strain exponentially between objects and adds StrainValueOf scaled by SkillMultiplier.
type StrainDecay[T preprocessing.Object] struct {
	*Strain[T]

	SkillMultiplier float64
	StrainDecayBase float64

	StrainValueOf func(current T) float64

	CurrentStrain float64
}

func NewStrainDecay[T preprocessing.Object](kind Kind, skillMultiplier, strainDecayBase float64) *StrainDecay[T] {
	skill := &StrainDecay[T]{
		Strain:          NewStrain[T](kind),
		SkillMultiplier: skillMultiplier,
		StrainDecayBase: strainDecayBase,
	}

	skill.StrainValueAt = skill.strainValueAt
	skill.CalculateInitialStrain = skill.initialStrain

	return skill
}

func (skill *StrainDecay[T]) strainDecay(ms float64) float64 {
	return math.Pow(skill.StrainDecayBase, ms/1000)
}

// initialStrain is the strain carried into a section starting at time, decayed from the object before current.
// A section may open before that object (the first one), the strain is then carried undecayed.
func (skill *StrainDecay[T]) initialStrain(time float64, current T) float64 {
	return skill.CurrentStrain * skill.strainDecay(max(0, time-current.Base().LastObject.GetStartTime()))
}

func (skill *StrainDecay[T]) strainValueAt(current T) float64 {
	skill.CurrentStrain *= skill.strainDecay(current.Base().DeltaTime)
	skill.CurrentStrain += skill.StrainValueOf(current) * skill.SkillMultiplier

	return skill.CurrentStrain
}
