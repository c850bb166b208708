package skills

import (
	"math"

	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/beatmap-difficulty/framework/math/mutils"
)

const (
	rhythmSkillMultiplier float64 = 10
	rhythmStrainDecayBase float64 = 0

	// rhythmStrainDecay is applied per note to the internal rhythm strain
	rhythmStrainDecay float64 = 0.96

	rhythmHistoryMaxLength = 8
)

type RhythmSkill struct {
	*strain.StrainDecay[*preprocessing.DifficultyObject]

	rhythmHistory []*preprocessing.DifficultyObject

	currentStrain          float64
	notesSinceRhythmChange int
}

func NewRhythmSkill() *RhythmSkill {
	skill := &RhythmSkill{
		StrainDecay:   strain.NewStrainDecay[*preprocessing.DifficultyObject](strain.Rhythm, rhythmSkillMultiplier, rhythmStrainDecayBase),
		rhythmHistory: make([]*preprocessing.DifficultyObject, 0, rhythmHistoryMaxLength),
	}

	skill.StrainValueOf = skill.rhythmStrainValue

	return skill
}

func (skill *RhythmSkill) rhythmStrainValue(current *preprocessing.DifficultyObject) float64 {
	// drum rolls and swells are exempt
	if !current.IsCircle {
		skill.resetRhythmAndStrain()
		return 0
	}

	skill.currentStrain *= rhythmStrainDecay
	skill.notesSinceRhythmChange++

	// no rhythm change, no rhythm strain
	if current.Rhythm.Difficulty == 0 {
		return 0
	}

	objectStrain := current.Rhythm.Difficulty

	objectStrain *= skill.repetitionPenalties(current)
	objectStrain *= patternLengthPenalty(skill.notesSinceRhythmChange)
	objectStrain *= skill.speedPenalty(current.DeltaTime)

	// the penalties above read notesSinceRhythmChange
	skill.notesSinceRhythmChange = 0

	skill.currentStrain += objectStrain

	return skill.currentStrain
}

func (skill *RhythmSkill) enqueue(current *preprocessing.DifficultyObject) {
	if len(skill.rhythmHistory) == rhythmHistoryMaxLength {
		copy(skill.rhythmHistory, skill.rhythmHistory[1:])
		skill.rhythmHistory = skill.rhythmHistory[:rhythmHistoryMaxLength-1]
	}

	skill.rhythmHistory = append(skill.rhythmHistory, current)
}

func (skill *RhythmSkill) repetitionPenalties(current *preprocessing.DifficultyObject) float64 {
	penalty := 1.0

	skill.enqueue(current)

	for mostRecentPatternsToCompare := 2; mostRecentPatternsToCompare <= rhythmHistoryMaxLength/2; mostRecentPatternsToCompare++ {
		for start := len(skill.rhythmHistory) - mostRecentPatternsToCompare - 1; start >= 0; start-- {
			if !skill.samePattern(start, mostRecentPatternsToCompare) {
				continue
			}

			notesSince := current.Index - skill.rhythmHistory[start].Index
			penalty *= repetitionPenalty(notesSince)

			break
		}
	}

	return penalty
}

func (skill *RhythmSkill) samePattern(start, mostRecentPatternsToCompare int) bool {
	history := skill.rhythmHistory

	for i := 0; i < mostRecentPatternsToCompare; i++ {
		if history[start+i].Rhythm != history[len(history)-mostRecentPatternsToCompare+i].Rhythm {
			return false
		}
	}

	return true
}

func repetitionPenalty(notesSince int) float64 {
	return min(1.0, 0.032*float64(notesSince))
}

func patternLengthPenalty(patternLength int) float64 {
	shortPatternPenalty := min(0.15*float64(patternLength), 1.0)
	longPatternPenalty := mutils.Clamp(2.5-0.15*float64(patternLength), 0.0, 1.0)

	return min(shortPatternPenalty, longPatternPenalty)
}

func (skill *RhythmSkill) speedPenalty(deltaTime float64) float64 {
	if deltaTime < 80 {
		return 1
	}

	if deltaTime < 210 {
		return math.Max(0, 1.4-0.005*deltaTime)
	}

	skill.resetRhythmAndStrain()

	return 0
}

func (skill *RhythmSkill) resetRhythmAndStrain() {
	skill.currentStrain = 0
	skill.notesSinceRhythmChange = 0
}
