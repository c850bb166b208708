package performance

import (
	"context"
	"fmt"
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/preprocessing"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
)

const (
	// SectionLength is the length of a strain section in ms
	SectionLength = 400.0

	// DefaultCheckInterval is how many objects are processed between cancellation checks
	DefaultCheckInterval = 64
)

type Options struct {
	SectionLength float64
	CheckInterval int

	// AfterEach, when set, runs after every object has been fed to all skills
	AfterEach func(index int)
}

func DefaultOptions() Options {
	return Options{
		SectionLength: SectionLength,
		CheckInterval: DefaultCheckInterval,
	}
}

func (o Options) withDefaults() Options {
	if o.SectionLength <= 0 {
		o.SectionLength = SectionLength
	}

	if o.CheckInterval <= 0 {
		o.CheckInterval = DefaultCheckInterval
	}

	return o
}

// Process feeds objs in order to every skill, splitting the timeline into sections for strain skills.
// firstTime is the start of the first hit object, which has no difficulty object of its own.
func Process[T preprocessing.Object](ctx context.Context, firstTime float64, objs []T, skillSet []skills.Skill[T], opts Options) error {
	opts = opts.withDefaults()

	strainSkills := make([]skills.StrainSkill[T], 0, len(skillSet))

	for _, s := range skillSet {
		if ss, ok := s.(skills.StrainSkill[T]); ok {
			strainSkills = append(strainSkills, ss)
		}
	}

	// the first object doesn't generate a strain, so we begin with an incremented section end
	currentSectionEnd := math.Ceil(firstTime/opts.SectionLength) * opts.SectionLength

	for i, h := range objs {
		if i%opts.CheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("difficulty calculation stopped at object %d: %w", i, err)
			}
		}

		for h.Base().StartTime > currentSectionEnd {
			for _, s := range strainSkills {
				s.SaveCurrentPeak()
				s.StartNewSectionFrom(currentSectionEnd, h)
			}

			currentSectionEnd += opts.SectionLength
		}

		for _, s := range skillSet {
			s.Process(h)
		}

		if opts.AfterEach != nil {
			opts.AfterEach(i)
		}
	}

	for _, s := range strainSkills {
		s.Finalize()
	}

	return nil
}
