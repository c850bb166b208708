package timing

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
	"github.com/Givikap120/beatmap-difficulty/framework/math/mutils"
)

// 440,476.190476190476,4,2,1,40,1,0
// offset, msPerBeat, meter, sampleset, customIndex, volume, uninherited, effects

type Effects int

const (
	Kiai        Effects = 1
	OmitBarLine Effects = 8
)

type Sampleset int

const (
	SamplesetAuto Sampleset = iota
	SamplesetNormal
	SamplesetSoft
	SamplesetDrum
)

const (
	minSvMultiplier = 0.1
	maxSvMultiplier = 10.0
)

// Line is either an *UninheritedLine or an *InheritedLine.
type Line interface {
	Base() *BaseLine
	isLine()
}

type BaseLine struct {
	Offset      float64
	Meter       int
	Sampleset   Sampleset
	CustomIndex int
	Volume      float64
	Effects     Effects

	// SvMult is the slider velocity multiplier, always 1 for uninherited lines
	SvMult float64

	index    int
	timeline *Timing
}

func (l *BaseLine) Base() *BaseLine { return l }

func (l *BaseLine) Kiai() bool { return l.Effects&Kiai != 0 }

func (l *BaseLine) OmitsBarLine() bool { return l.Effects&OmitBarLine != 0 }

// Index returns the position of the line in its Timing.
func (l *BaseLine) Index() int { return l.index }

// UninheritedLine sets the tempo.
type UninheritedLine struct {
	BaseLine
	MsPerBeat float64
	BPM       float64
}

func (*UninheritedLine) isLine() {}

// ScaledBPM weights the line's BPM so that 120 bpm is 0.5, 180 bpm is 1 and 240 bpm is 2.
func (l *UninheritedLine) ScaledBPM() float64 {
	return ScaledBPM(l.BPM)
}

// InheritedLine changes slider velocity, volume and samples without touching the tempo.
type InheritedLine struct {
	BaseLine
	BeatLength float64
}

func (*InheritedLine) isLine() {}

// GoverningLine scans backwards for the nearest uninherited line.
func (l *InheritedLine) GoverningLine() (*UninheritedLine, error) {
	if l.timeline == nil {
		return nil, ErrNoUninheritedLine
	}

	for i := l.index - 1; i >= 0; i-- {
		if u, ok := l.timeline.lines[i].(*UninheritedLine); ok {
			return u, nil
		}
	}

	return nil, ErrNoUninheritedLine
}

// BPM is the tempo in effect for this line.
func (l *InheritedLine) BPM() (float64, error) {
	u, err := l.GoverningLine()
	if err != nil {
		return 0, err
	}

	return u.BPM, nil
}

func ScaledBPM(bpm float64) float64 {
	return bpm*bpm/14400 - bpm/80 + 1
}

// IsUninherited reports whether the line code describes a tempo line. Missing in file version 5, where every line is uninherited.
func IsUninherited(args []string) bool {
	if len(args) > 6 {
		return args[6] == "1"
	}

	return true
}

// ParseLine builds a timing line from its comma-separated fields.
func ParseLine(args []string) (Line, error) {
	base, err := parseBase(args)
	if err != nil {
		return nil, err
	}

	beatLength, err := fields.Float(args, 1, "msPerBeat")
	if err != nil {
		return nil, err
	}

	if IsUninherited(args) {
		if beatLength <= 0 {
			return nil, fields.Invalid("msPerBeat", args[1], "must be positive")
		}

		bpm := 60000 / beatLength

		// subnormal beat lengths overflow the bpm or its square
		if scaled := ScaledBPM(bpm); math.IsInf(bpm, 0) || math.IsInf(scaled, 0) || math.IsNaN(scaled) {
			return nil, fields.Invalid("msPerBeat", args[1], "too small")
		}

		base.SvMult = 1

		return &UninheritedLine{
			BaseLine:  base,
			MsPerBeat: beatLength,
			BPM:       bpm,
		}, nil
	}

	if beatLength == 0 {
		return nil, fields.Invalid("msPerBeat", args[1], "inherited beat length can not be zero")
	}

	base.SvMult = mutils.Clamp(1/(beatLength*-0.01), minSvMultiplier, maxSvMultiplier)

	return &InheritedLine{
		BaseLine:   base,
		BeatLength: beatLength,
	}, nil
}

func parseBase(args []string) (BaseLine, error) {
	var (
		line BaseLine
		err  error
	)

	if line.Offset, err = fields.Float(args, 0, "offset"); err != nil {
		return line, err
	}

	if line.Meter, err = fields.OptionalInt(args, 2, "meter", 4); err != nil {
		return line, err
	}

	sampleset, err := fields.OptionalInt(args, 3, "sampleset", int(SamplesetNormal))
	if err != nil {
		return line, err
	}

	line.Sampleset = Sampleset(sampleset)

	if line.CustomIndex, err = fields.OptionalInt(args, 4, "customIndex", 0); err != nil {
		return line, err
	}

	if line.Volume, err = fields.OptionalFloat(args, 5, "volume", 100); err != nil {
		return line, err
	}

	effects, err := fields.OptionalInt(args, 7, "effects", 0)
	if err != nil {
		return line, err
	}

	line.Effects = Effects(effects)

	return line, nil
}
