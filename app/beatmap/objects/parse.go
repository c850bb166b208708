package objects

import (
	"strings"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/timing"
	"github.com/go-gl/mathgl/mgl32"
)

// x, y, time, typeFlags, hitsound, extras                                                                       circle
// x, y, time, typeFlags, hitsound, sliderPath, edgeAmount, pixelLength, hitsoundEdges, additionEdges, extras    slider
// x, y, time, typeFlags, hitsound, endTime, extras                                                              spinner
// x, y, time, typeFlags, hitsound, endTime:extras                                                               hold note

// Parse builds a hit object from its comma-separated fields. Sliders still need ApplyTiming.
func Parse(args []string) (IHitObject, error) {
	base, err := parseBase(args)
	if err != nil {
		return nil, err
	}

	switch {
	case base.HasType(CircleType):
		if base.Extras, err = parseExtras(args, 5, 0); err != nil {
			return nil, err
		}

		return &Circle{HitObject: base}, nil
	case base.HasType(SliderType):
		return parseSlider(base, args)
	case base.HasType(HoldNoteType):
		return parseHoldNote(base, args)
	default:
		return parseSpinner(base, args)
	}
}

func parseBase(args []string) (HitObject, error) {
	var (
		h   HitObject
		err error
		x   float32
		y   float32
	)

	h.Code = strings.Join(args, ",")

	if x, err = fields.Float32(args, 0, "x"); err != nil {
		return h, err
	}

	if y, err = fields.Float32(args, 1, "y"); err != nil {
		return h, err
	}

	h.Position = mgl32.Vec2{x, y}

	if h.StartTime, err = fields.Float(args, 2, "time"); err != nil {
		return h, err
	}

	objType, err := fields.Int(args, 3, "type")
	if err != nil {
		return h, err
	}

	h.Type = Type(objType)

	sound, err := fields.Int(args, 4, "hitSound")
	if err != nil {
		return h, err
	}

	h.HitSound = HitSound(sound)

	return h, nil
}

// parseExtras reads the sample group at args[index], skipping the first skip sub-fields.
// Older file versions omit the group entirely.
func parseExtras(args []string, index, skip int) (Extras, error) {
	var extras Extras

	if index >= len(args) || !strings.Contains(args[index], ":") {
		return extras, nil
	}

	parts := fields.Sub(args[index], ":")[skip:]

	sampleset, err := fields.OptionalInt(parts, 0, "sampleset", 0)
	if err != nil {
		return extras, err
	}

	addition, err := fields.OptionalInt(parts, 1, "additionSet", 0)
	if err != nil {
		return extras, err
	}

	extras.Sampleset = timing.Sampleset(sampleset)
	extras.Addition = timing.Sampleset(addition)

	if extras.CustomIndex, err = fields.OptionalInt(parts, 2, "customIndex", 0); err != nil {
		return extras, err
	}

	// volume is missing in file version 11
	if extras.Volume, err = fields.OptionalInt(parts, 3, "volume", 0); err != nil {
		return extras, err
	}

	if len(parts) > 4 {
		extras.Filename = strings.TrimSpace(parts[4])
	}

	return extras, nil
}

func parseSpinner(base HitObject, args []string) (*Spinner, error) {
	end, err := fields.Float(args, 5, "endTime")
	if err != nil {
		return nil, err
	}

	if base.Extras, err = parseExtras(args, 6, 0); err != nil {
		return nil, err
	}

	return &Spinner{HitObject: base, EndTime: end}, nil
}

func parseHoldNote(base HitObject, args []string) (*HoldNote, error) {
	if len(args) <= 5 {
		return nil, fields.Invalid("endTime", "", "missing field")
	}

	end, err := fields.ParseFloat(fields.Sub(args[5], ":")[0], "endTime")
	if err != nil {
		return nil, err
	}

	if base.Extras, err = parseExtras(args, 5, 1); err != nil {
		return nil, err
	}

	return &HoldNote{HitObject: base, EndTime: end}, nil
}

func parseSlider(base HitObject, args []string) (*Slider, error) {
	s := &Slider{HitObject: base}

	if len(args) <= 5 {
		return nil, fields.Invalid("sliderPath", "", "missing field")
	}

	tokens := fields.Sub(args[5], "|")

	s.CurveType = ParseCurveType(tokens[0])

	// the head is a node in the editor too
	s.Nodes = append(s.Nodes, base.Position)

	for _, token := range tokens[1:] {
		if len(token) <= 1 {
			continue
		}

		xy := fields.Sub(token, ":")
		if len(xy) < 2 {
			return nil, fields.Invalid("sliderPath", args[5], "node is not x:y")
		}

		x, err := fields.ParseFloat(xy[0], "sliderPath")
		if err != nil {
			return nil, err
		}

		y, err := fields.ParseFloat(xy[1], "sliderPath")
		if err != nil {
			return nil, err
		}

		s.Nodes = append(s.Nodes, mgl32.Vec2{float32(x), float32(y)})
	}

	var err error

	if s.EdgeAmount, err = fields.Int(args, 6, "edgeAmount"); err != nil {
		return nil, err
	}

	if s.EdgeAmount < 1 {
		return nil, fields.Invalid("edgeAmount", args[6], "must be at least 1")
	}

	if s.PixelLength, err = fields.Float(args, 7, "pixelLength"); err != nil {
		return nil, err
	}

	if s.Extras, err = parseExtras(args, 10, 0); err != nil {
		return nil, err
	}

	if s.EdgeHitSounds, err = parseEdgeHitSounds(args, s.EdgeAmount, base.HitSound); err != nil {
		return nil, err
	}

	if s.EdgeSamples, err = parseEdgeSamples(args, s.EdgeAmount, s.Extras); err != nil {
		return nil, err
	}

	s.path = NewPath(s.CurveType, s.Nodes, s.PixelLength)

	return s, nil
}

// parseEdgeHitSounds reads args[8], falling back to the object's hit sound on every edge when it is absent.
func parseEdgeHitSounds(args []string, edgeAmount int, fallback HitSound) ([]HitSound, error) {
	if len(args) <= 8 || strings.TrimSpace(args[8]) == "" {
		sounds := make([]HitSound, edgeAmount+1)
		for i := range sounds {
			sounds[i] = fallback
		}

		return sounds, nil
	}

	parts := fields.Sub(args[8], "|")
	sounds := make([]HitSound, 0, len(parts))

	for _, part := range parts {
		v, err := fields.ParseInt(part, "edgeHitSounds")
		if err != nil {
			return nil, err
		}

		sounds = append(sounds, HitSound(v))
	}

	return sounds, nil
}

// parseEdgeSamples reads args[9], falling back to the object's sampleset and addition when it is absent.
func parseEdgeSamples(args []string, edgeAmount int, extras Extras) ([]EdgeSample, error) {
	if len(args) <= 9 || strings.TrimSpace(args[9]) == "" {
		samples := make([]EdgeSample, edgeAmount+1)
		for i := range samples {
			samples[i] = EdgeSample{Sampleset: extras.Sampleset, Addition: extras.Addition}
		}

		return samples, nil
	}

	parts := fields.Sub(args[9], "|")
	samples := make([]EdgeSample, 0, len(parts))

	for _, part := range parts {
		pair := fields.Sub(part, ":")

		sampleset, err := fields.Int(pair, 0, "edgeSets")
		if err != nil {
			return nil, err
		}

		addition, err := fields.OptionalInt(pair, 1, "edgeSets", 0)
		if err != nil {
			return nil, err
		}

		samples = append(samples, EdgeSample{Sampleset: timing.Sampleset(sampleset), Addition: timing.Sampleset(addition)})
	}

	return samples, nil
}
