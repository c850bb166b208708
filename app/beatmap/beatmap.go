package beatmap

import (
	"sort"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/timing"
)

type Mode int

const (
	Standard Mode = iota
	Taiko
	Catch
	Mania
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "osu"
	case Taiko:
		return "taiko"
	case Catch:
		return "fruits"
	case Mania:
		return "mania"
	}

	return "unknown"
}

// Source is a beatmap already split into fields: [Difficulty] key/values and one field array per
// [TimingPoints] and [HitObjects] line.
type Source struct {
	Mode          Mode
	StackLeniency float64
	Difficulty    map[string]string
	TimingLines   [][]string
	HitObjects    [][]string
}

// Beatmap is the read-only structural model of one difficulty.
type Beatmap struct {
	Mode          Mode
	StackLeniency float64
	Difficulty    difficulty.Settings
	Timing        *timing.Timing
	HitObjects    []objects.IHitObject
}

// New parses and times every line of src and applies stacking. The first invalid line aborts with an
// error wrapping fields.ErrInvalidBeatmapData.
func New(src Source) (*Beatmap, error) {
	settings, err := difficulty.Parse(src.Difficulty)
	if err != nil {
		return nil, err
	}

	lines := make([]timing.Line, 0, len(src.TimingLines))

	for i, args := range src.TimingLines {
		line, err := timing.ParseLine(args)
		if err != nil {
			return nil, fields.At(err, "TimingPoints", i)
		}

		lines = append(lines, line)
	}

	b := &Beatmap{
		Mode:          src.Mode,
		StackLeniency: src.StackLeniency,
		Difficulty:    settings,
		Timing:        timing.New(lines),
		HitObjects:    make([]objects.IHitObject, 0, len(src.HitObjects)),
	}

	for i, args := range src.HitObjects {
		obj, err := objects.Parse(args)
		if err != nil {
			return nil, fields.At(err, "HitObjects", i)
		}

		if slider, ok := obj.(*objects.Slider); ok {
			if err = slider.ApplyTiming(b.Timing, settings); err != nil {
				return nil, fields.At(err, "HitObjects", i)
			}
		}

		b.HitObjects = append(b.HitObjects, obj)
	}

	sort.SliceStable(b.HitObjects, func(i, j int) bool {
		return b.HitObjects[i].GetStartTime() < b.HitObjects[j].GetStartTime()
	})

	for i, obj := range b.HitObjects {
		obj.GetBasicData().SetID(i)
	}

	if b.Mode == Standard {
		b.applyStacking()
	}

	return b, nil
}

func (b *Beatmap) CircleRadius() float32 {
	return b.Difficulty.CircleRadius()
}
