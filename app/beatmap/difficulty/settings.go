package difficulty

import (
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
	"github.com/Givikap120/beatmap-difficulty/framework/math/mutils"
)

// HPDrainRate:6
// CircleSize:4.2
// OverallDifficulty:9
// ApproachRate:9.7
// SliderMultiplier:2.5
// SliderTickRate:2

const section = "Difficulty"

type limit struct {
	key      string
	min, max float64
}

var (
	hpLimit   = limit{"HPDrainRate", 0, 10}
	csLimit   = limit{"CircleSize", 0, 18}
	odLimit   = limit{"OverallDifficulty", 0, 10}
	arLimit   = limit{"ApproachRate", 0, 10}
	smLimit   = limit{"SliderMultiplier", 0.4, 3.6}
	tickLimit = limit{"SliderTickRate", 0.5, 8}
)

type Settings struct {
	HPDrainRate       float64
	CircleSize        float64
	OverallDifficulty float64
	ApproachRate      float64
	SliderMultiplier  float64
	SliderTickRate    float64
}

// Default returns the values the game uses for keys that are not present in the file.
func Default() Settings {
	return Settings{
		HPDrainRate:       5,
		CircleSize:        5,
		OverallDifficulty: 5,
		ApproachRate:      5,
		SliderMultiplier:  1.4,
		SliderTickRate:    1,
	}
}

// Parse reads the [Difficulty] key/value pairs. Values are clamped to their valid ranges,
// ApproachRate falls back to OverallDifficulty in files that predate it.
func Parse(values map[string]string) (Settings, error) {
	s := Default()

	read := func(l limit, dst *float64) (bool, error) {
		raw, ok := values[l.key]
		if !ok {
			return false, nil
		}

		v, err := fields.ParseFloat(raw, l.key)
		if err != nil {
			return false, fields.At(err, section, -1)
		}

		*dst = mutils.Clamp(v, l.min, l.max)

		return true, nil
	}

	for _, f := range []struct {
		limit
		dst *float64
	}{
		{hpLimit, &s.HPDrainRate},
		{csLimit, &s.CircleSize},
		{odLimit, &s.OverallDifficulty},
		{smLimit, &s.SliderMultiplier},
		{tickLimit, &s.SliderTickRate},
	} {
		if _, err := read(f.limit, f.dst); err != nil {
			return s, err
		}
	}

	found, err := read(arLimit, &s.ApproachRate)
	if err != nil {
		return s, err
	}

	if !found {
		s.ApproachRate = s.OverallDifficulty
	}

	return s, nil
}

// CircleRadius returns the radius of circles and slider heads in osu!pixels.
func (s Settings) CircleRadius() float32 {
	return float32(32 * (1 - 0.7*(s.CircleSize-5)/5))
}

// DifficultyRange maps a 0-10 difficulty value onto min (at 10), avg (at 5) and max (at 0).
func DifficultyRange(d, min, avg, max float64) float64 {
	if d < 5 {
		return avg + (max-avg)*(5-d)/5
	}

	return avg - (avg-min)*(d-5)/5
}

// FadeIn is the time from when an object starts fading in until it is fully opaque.
func (s Settings) FadeIn() float64 {
	return DifficultyRange(s.ApproachRate, 450, 1200, 1800)
}

// Preempt is the time from when an object is fully opaque until it has to be hit.
func (s Settings) Preempt() float64 {
	return DifficultyRange(s.ApproachRate, 300, 800, 1200)
}
