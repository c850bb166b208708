package api

import (
	"context"
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
)

type Attributes struct {
	// StarRating is the combined difficulty of the map
	StarRating float64

	// Aim stars, osu!standard only
	Aim float64

	// Speed stars, osu!standard only
	Speed float64

	// Colour, Rhythm and Stamina stars, taiko only
	Colour  float64
	Rhythm  float64
	Stamina float64

	// PeakDifficulty is the combined taiko rating before rescaling
	PeakDifficulty float64

	ApproachRate      float64
	OverallDifficulty float64

	// GreatHitWindow is the window of the best judgement in ms
	GreatHitWindow float64

	ObjectCount    int
	HitCircleCount int
	Sliders        int
	Spinners       int
	MaxCombo       int
}

// Finite reports whether every rating of a is a finite number.
func (a Attributes) Finite() bool {
	for _, v := range []float64{a.StarRating, a.Aim, a.Speed, a.Colour, a.Rhythm, a.Stamina, a.PeakDifficulty,
		a.ApproachRate, a.OverallDifficulty, a.GreatHitWindow} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// StrainPeaks contains the section peaks of every skill, as well as peaks passed through star rating formula
type StrainPeaks struct {
	Peaks map[skills.Kind][]float64

	// Total contains the peaks of each section combined like a star rating
	Total []float64
}

type IDifficultyCalculator interface {
	CalculateSingle(ctx context.Context, b *beatmap.Beatmap) (Attributes, error)
	CalculateStep(ctx context.Context, b *beatmap.Beatmap) ([]Attributes, error)
	CalculateStrainPeaks(ctx context.Context, b *beatmap.Beatmap) (StrainPeaks, error)
	GetVersion() int
	GetVersionMessage() string
}
