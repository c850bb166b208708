package standard

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard/preprocessing"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/api"
	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
	"github.com/dustin/go-humanize"
)

const (
	// DifficultyMultiplier is a global stars multiplier
	DifficultyMultiplier float64 = 0.0675
	CurrentVersion       int     = 20191024
)

type DifficultyCalculator struct {
	Options performance.Options
}

func NewDifficultyCalculator() api.IDifficultyCalculator {
	return &DifficultyCalculator{Options: performance.DefaultOptions()}
}

func starRating(rawAim, rawSpeed float64) (aimRating, speedRating, total float64) {
	aimRating = math.Sqrt(rawAim) * DifficultyMultiplier
	speedRating = math.Sqrt(rawSpeed) * DifficultyMultiplier

	total = aimRating + speedRating + math.Abs(aimRating-speedRating)/2

	return
}

// baseAttributes fills the parts of Attributes that don't depend on the skills
func baseAttributes(settings difficulty.Settings) api.Attributes {
	// int casts match osu!stable
	hitWindowGreat := float64(int(settings.OsuHitWindow(difficulty.Great)))
	preempt := float64(int(settings.Preempt()))

	attr := api.Attributes{
		OverallDifficulty: (80 - hitWindowGreat) / 6,
		GreatHitWindow:    hitWindowGreat,
	}

	if preempt > 1200 {
		attr.ApproachRate = (1800 - preempt) / 120
	} else {
		attr.ApproachRate = (1200-preempt)/150 + 5
	}

	return attr
}

// getStars retrieves skill values and converts them to Attributes
func (diffCalc *DifficultyCalculator) getStars(skills *SkillsProcessor, attr api.Attributes) api.Attributes {
	attr.Aim, attr.Speed, attr.StarRating = starRating(skills.Aim.DifficultyValue(), skills.Speed.DifficultyValue())

	return attr
}

func (diffCalc *DifficultyCalculator) addObjectToAttribs(o objects.IHitObject, attr *api.Attributes) {
	switch s := o.(type) {
	case *objects.Slider:
		attr.Sliders++
		attr.MaxCombo += len(s.TickTimes())
	case *objects.Circle:
		attr.HitCircleCount++
	case *objects.Spinner:
		attr.Spinners++
	}

	attr.MaxCombo++
	attr.ObjectCount++
}

func (diffCalc *DifficultyCalculator) process(ctx context.Context, b *beatmap.Beatmap, skills *SkillsProcessor, afterEach func(int)) error {
	diffObjects := preprocessing.CreateDifficultyObjects(b)

	opts := diffCalc.Options
	opts.AfterEach = afterEach

	if err := performance.Process(ctx, b.HitObjects[0].GetStartTime(), diffObjects.Items(), skills.Skills(), opts); err != nil {
		return fmt.Errorf("osu!standard: %w", err)
	}

	return nil
}

// CalculateSingle calculates the final Attributes of a map
func (diffCalc *DifficultyCalculator) CalculateSingle(ctx context.Context, b *beatmap.Beatmap) (api.Attributes, error) {
	if len(b.HitObjects) == 0 {
		return api.Attributes{}, nil
	}

	skills := NewSkillsProcessor()

	attr := baseAttributes(b.Difficulty)

	for _, o := range b.HitObjects {
		diffCalc.addObjectToAttribs(o, &attr)
	}

	if err := diffCalc.process(ctx, b, skills, nil); err != nil {
		return api.Attributes{}, err
	}

	return diffCalc.getStars(skills, attr), nil
}

// CalculateStep calculates successive star ratings for every part of a beatmap
func (diffCalc *DifficultyCalculator) CalculateStep(ctx context.Context, b *beatmap.Beatmap) ([]api.Attributes, error) {
	if len(b.HitObjects) == 0 {
		return nil, nil
	}

	log.Println("Calculating step SR for", humanize.Comma(int64(len(b.HitObjects))), "objects")

	startTime := time.Now()

	skills := NewSkillsProcessor()

	stars := make([]api.Attributes, 1, len(b.HitObjects))
	stars[0] = baseAttributes(b.Difficulty)

	diffCalc.addObjectToAttribs(b.HitObjects[0], &stars[0])

	err := diffCalc.process(ctx, b, skills, func(i int) {
		attr := stars[i]
		diffCalc.addObjectToAttribs(b.HitObjects[i+1], &attr)

		stars = append(stars, diffCalc.getStars(skills, attr))
	})

	if err != nil {
		return nil, err
	}

	log.Println("Calculations finished! Took", time.Since(startTime).Truncate(time.Millisecond).String())

	return stars, nil
}

func (diffCalc *DifficultyCalculator) CalculateStrainPeaks(ctx context.Context, b *beatmap.Beatmap) (api.StrainPeaks, error) {
	if len(b.HitObjects) == 0 {
		return api.StrainPeaks{}, nil
	}

	skills := NewSkillsProcessor()

	if err := diffCalc.process(ctx, b, skills, nil); err != nil {
		return api.StrainPeaks{}, err
	}

	peaks := api.StrainPeaks{
		Peaks: map[strain.Kind][]float64{
			strain.Aim:   skills.Aim.CurrentStrainPeaks(),
			strain.Speed: skills.Speed.CurrentStrainPeaks(),
		},
	}

	aim, speed := peaks.Peaks[strain.Aim], peaks.Peaks[strain.Speed]

	peaks.Total = make([]float64, len(aim))

	for i := range aim {
		_, _, peaks.Total[i] = starRating(aim[i], speed[i])
	}

	return peaks, nil
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2019-10-24: aim and speed with lazy slider travel"
}
