package performance

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	engine "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/api"
	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/skills"
	"github.com/dustin/go-humanize"
)

const (
	DifficultyMultiplier float64 = 1.35
	CurrentVersion       int     = 20221107

	// firstDifficultyObject is the index of the first hit object that gets a difficulty object, rhythm needs two before it
	firstDifficultyObject = 2
)

type DifficultyCalculator struct {
	Options engine.Options
}

func NewDifficultyCalculator() api.IDifficultyCalculator {
	return &DifficultyCalculator{Options: engine.DefaultOptions()}
}

// rescale compresses high ratings, negative values pass through
func rescale(sr float64) float64 {
	if sr < 0 {
		return sr
	}

	return 10.43 * math.Log(sr/8+1)
}

func baseAttributes(settings difficulty.Settings) api.Attributes {
	return api.Attributes{
		OverallDifficulty: settings.OverallDifficulty,
		GreatHitWindow:    settings.TaikoHitWindow(difficulty.Great),
	}
}

func addObjectToAttribs(o objects.IHitObject, attr *api.Attributes) {
	switch o.(type) {
	case *objects.Circle:
		attr.HitCircleCount++
		attr.MaxCombo++
	case *objects.Slider:
		attr.Sliders++
	case *objects.Spinner:
		attr.Spinners++
	}

	attr.ObjectCount++
}

func getStars(peaks *skills.Peaks, attr api.Attributes) api.Attributes {
	attr.Colour = peaks.ColourDifficultyValue() * DifficultyMultiplier
	attr.Rhythm = peaks.RhythmDifficultyValue() * DifficultyMultiplier
	attr.Stamina = peaks.StaminaDifficultyValue() * DifficultyMultiplier

	attr.PeakDifficulty = peaks.DifficultyValue() * DifficultyMultiplier
	attr.StarRating = rescale(attr.PeakDifficulty * 1.4)

	return attr
}

func (diffCalc *DifficultyCalculator) process(ctx context.Context, b *beatmap.Beatmap, peaks *skills.Peaks, afterEach func(int)) error {
	diffObjects := preprocessing.CreateDifficultyObjects(b)

	opts := diffCalc.Options
	opts.AfterEach = afterEach

	skillSet := []strain.Skill[*preprocessing.DifficultyObject]{peaks}

	if err := engine.Process(ctx, b.HitObjects[0].GetStartTime(), diffObjects.Items(), skillSet, opts); err != nil {
		return fmt.Errorf("osu!taiko: %w", err)
	}

	return nil
}

// CalculateSingle calculates the final Attributes of a map
func (diffCalc *DifficultyCalculator) CalculateSingle(ctx context.Context, b *beatmap.Beatmap) (api.Attributes, error) {
	if len(b.HitObjects) == 0 {
		return api.Attributes{}, nil
	}

	peaks := skills.NewPeaks()

	attr := baseAttributes(b.Difficulty)

	for _, o := range b.HitObjects {
		addObjectToAttribs(o, &attr)
	}

	if err := diffCalc.process(ctx, b, peaks, nil); err != nil {
		return api.Attributes{}, err
	}

	return getStars(peaks, attr), nil
}

// CalculateStep returns the Attributes after every hit object. The first two objects carry no strain.
func (diffCalc *DifficultyCalculator) CalculateStep(ctx context.Context, b *beatmap.Beatmap) ([]api.Attributes, error) {
	if len(b.HitObjects) == 0 {
		return nil, nil
	}

	log.Println("Calculating taiko step SR for", humanize.Comma(int64(len(b.HitObjects))), "objects")

	startTime := time.Now()

	peaks := skills.NewPeaks()

	stars := make([]api.Attributes, 0, len(b.HitObjects))

	attr := baseAttributes(b.Difficulty)

	for _, o := range b.HitObjects[:min(firstDifficultyObject, len(b.HitObjects))] {
		addObjectToAttribs(o, &attr)
		stars = append(stars, attr)
	}

	err := diffCalc.process(ctx, b, peaks, func(i int) {
		attr := stars[len(stars)-1]
		addObjectToAttribs(b.HitObjects[i+firstDifficultyObject], &attr)

		stars = append(stars, getStars(peaks, attr))
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

	peaks := skills.NewPeaks()

	if err := diffCalc.process(ctx, b, peaks, nil); err != nil {
		return api.StrainPeaks{}, err
	}

	result := api.StrainPeaks{
		Peaks: map[strain.Kind][]float64{
			strain.Colour:  peaks.Colour.CurrentStrainPeaks(),
			strain.Rhythm:  peaks.Rhythm.CurrentStrainPeaks(),
			strain.Stamina: peaks.Stamina.CurrentStrainPeaks(),
		},
		Total: peaks.CurrentStrainPeaks(),
	}

	for i, peak := range result.Total {
		result.Total[i] = rescale(peak * DifficultyMultiplier * 1.4)
	}

	return result, nil
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2022-11-07: colour, rhythm and stamina peaks"
}
