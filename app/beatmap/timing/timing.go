package timing

import (
	"errors"
	"sort"

	"github.com/Givikap120/beatmap-difficulty/framework/math/mutils"
)

// ErrNoUninheritedLine is returned when a tempo is requested at a time no uninherited line covers.
var ErrNoUninheritedLine = errors.New("no uninherited timing line in effect")

// Timing is the ordered, read-only list of timing lines of a beatmap.
type Timing struct {
	lines       []Line
	uninherited []*UninheritedLine
}

// New sorts lines by offset, uninherited before inherited on equal offsets and file order otherwise, and takes ownership of them.
func New(lines []Line) *Timing {
	t := &Timing{lines: make([]Line, len(lines))}
	copy(t.lines, lines)

	sort.SliceStable(t.lines, func(i, j int) bool {
		a, b := t.lines[i], t.lines[j]
		if a.Base().Offset != b.Base().Offset {
			return a.Base().Offset < b.Base().Offset
		}

		_, aInherited := a.(*InheritedLine)
		_, bInherited := b.(*InheritedLine)

		return !aInherited && bInherited
	})

	for i, l := range t.lines {
		base := l.Base()
		base.index = i
		base.timeline = t

		if u, ok := l.(*UninheritedLine); ok {
			t.uninherited = append(t.uninherited, u)
		}
	}

	return t
}

func (t *Timing) Len() int {
	return len(t.lines)
}

func (t *Timing) Line(i int) Line {
	return t.lines[i]
}

// Lines returns a copy of the ordered lines.
func (t *Timing) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)

	return out
}

func (t *Timing) Uninherited() []*UninheritedLine {
	out := make([]*UninheritedLine, len(t.uninherited))
	copy(out, t.uninherited)

	return out
}

// search returns the index of the last element whose offset is <= time, or -1.
func search(n int, offset func(int) float64, time float64) int {
	return sort.Search(n, func(i int) bool { return offset(i) > time }) - 1
}

// LineAt returns the line in effect at time, or the first line if time is before all of them. Nil without lines.
func (t *Timing) LineAt(time float64) Line {
	if len(t.lines) == 0 {
		return nil
	}

	i := search(len(t.lines), func(i int) float64 { return t.lines[i].Base().Offset }, time)
	if i < 0 {
		return t.lines[0]
	}

	return t.lines[i]
}

// NextLine returns the first line starting after the one in effect at time, nil if there is none.
func (t *Timing) NextLine(time float64) Line {
	if len(t.lines) == 0 {
		return nil
	}

	i := search(len(t.lines), func(i int) float64 { return t.lines[i].Base().Offset }, time)
	if i < 0 {
		return t.lines[0]
	}

	if i+1 >= len(t.lines) {
		return nil
	}

	return t.lines[i+1]
}

// UninheritedAt returns the nearest uninherited line at or before time.
func (t *Timing) UninheritedAt(time float64) (*UninheritedLine, error) {
	i := search(len(t.uninherited), func(i int) float64 { return t.uninherited[i].Offset }, time)
	if i < 0 {
		return nil, ErrNoUninheritedLine
	}

	return t.uninherited[i], nil
}

func (t *Timing) BPMAt(time float64) (float64, error) {
	line, err := t.UninheritedAt(time)
	if err != nil {
		return 0, err
	}

	return line.BPM, nil
}

func (t *Timing) ScaledBPMAt(time float64) (float64, error) {
	bpm, err := t.BPMAt(time)
	if err != nil {
		return 0, err
	}

	return ScaledBPM(bpm), nil
}

// SvMultAt is the slider velocity multiplier of the line in effect, 1 without lines.
func (t *Timing) SvMultAt(time float64) float64 {
	line := t.LineAt(time)
	if line == nil {
		return 1
	}

	return line.Base().SvMult
}

// Prev returns the line before l, optionally skipping lines sharing its offset.
func (t *Timing) Prev(l Line, skipConcurrent bool) Line {
	base := l.Base()

	for i := base.index - 1; i >= 0; i-- {
		prev := t.lines[i]
		if !skipConcurrent || !mutils.AlmostEqual(prev.Base().Offset, base.Offset) {
			return prev
		}
	}

	return nil
}

// Next returns the line after l, optionally skipping lines sharing its offset.
func (t *Timing) Next(l Line, skipConcurrent bool) Line {
	base := l.Base()

	for i := base.index + 1; i < len(t.lines); i++ {
		next := t.lines[i]
		if !skipConcurrent || !mutils.AlmostEqual(next.Base().Offset, base.Offset) {
			return next
		}
	}

	return nil
}
