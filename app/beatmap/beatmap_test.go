package beatmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/timing"
	"github.com/go-gl/mathgl/mgl32"
)

func split(lines ...string) [][]string {
	out := make([][]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.Split(l, ","))
	}

	return out
}

func source(mode Mode, hitObjects ...string) Source {
	return Source{
		Mode:          mode,
		StackLeniency: 0.7,
		Difficulty:    map[string]string{},
		TimingLines:   split("0,500,4,2,0,100,1,0"),
		HitObjects:    split(hitObjects...),
	}
}

func mustNew(t *testing.T, src Source) *Beatmap {
	t.Helper()

	b, err := New(src)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	return b
}

func stackIndices(b *Beatmap) []int {
	out := make([]int, 0, len(b.HitObjects))

	for _, obj := range b.HitObjects {
		if s, ok := obj.(objects.Stackable); ok {
			out = append(out, s.GetStacking().StackIndex)
		}
	}

	return out
}

func TestNewSortsAndIndexes(t *testing.T) {
	b := mustNew(t, source(Standard, "0,0,300,1,0", "100,0,0,5,0", "200,0,100,1,0"))

	for i, want := range []float64{0, 100, 300} {
		obj := b.HitObjects[i]

		if obj.GetStartTime() != want {
			t.Errorf("object %d time = %v, want %v", i, obj.GetStartTime(), want)
		}

		if obj.GetID() != i {
			t.Errorf("object %d id = %d, want %d", i, obj.GetID(), i)
		}
	}
}

func TestNewInvalidLine(t *testing.T) {
	src := source(Standard, "0,0,0,1,0", "0,0,x,1,0")

	_, err := New(src)
	if !errors.Is(err, fields.ErrInvalidBeatmapData) {
		t.Fatalf("New error = %v, want ErrInvalidBeatmapData", err)
	}

	var invalid *fields.InvalidDataError
	if !errors.As(err, &invalid) || invalid.Section != "HitObjects" || invalid.Line != 1 {
		t.Errorf("New error = %v, want HitObjects line 1", err)
	}

	src = source(Standard)
	src.TimingLines = split("0,0,4,2,0,100,1,0")

	if _, err = New(src); !errors.Is(err, fields.ErrInvalidBeatmapData) {
		t.Errorf("New with zero beat length error = %v, want ErrInvalidBeatmapData", err)
	}
}

func TestNewSliderBeforeTiming(t *testing.T) {
	src := source(Standard, "0,0,0,2,0,L|100:0,1,100")
	src.TimingLines = split("1000,500,4,2,0,100,1,0")

	_, err := New(src)
	if !errors.Is(err, fields.ErrInvalidBeatmapData) || !errors.Is(err, timing.ErrNoUninheritedLine) {
		t.Errorf("New error = %v, want ErrInvalidBeatmapData wrapping ErrNoUninheritedLine", err)
	}
}

func TestNoStackingWhenApart(t *testing.T) {
	b := mustNew(t, source(Standard, "100,100,0,1,0", "100,100,100,1,0", "100,100,300,1,0"))

	for i, obj := range b.HitObjects {
		if got := b.StackedPosition(obj); got != obj.GetStartPosition() {
			t.Errorf("object %d stacked position = %v, want %v", i, got, obj.GetStartPosition())
		}
	}
}

func TestStackingCircles(t *testing.T) {
	b := mustNew(t, source(Standard, "100,100,0,1,0", "100,100,30,1,0", "101,101,60,1,0"))

	want := []int{2, 1, 0}
	got := stackIndices(b)

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stack indices = %v, want %v", got, want)
			break
		}
	}

	// radius 32 at CS 5, each step moves 3.2px up-left
	first := b.StackedPosition(b.HitObjects[0])
	if first.Sub(mgl32.Vec2{93.6, 93.6}).Len() > 1e-3 {
		t.Errorf("first stacked position = %v, want [93.6 93.6]", first)
	}
}

func TestStackingIsStandardOnly(t *testing.T) {
	b := mustNew(t, source(Taiko, "100,100,0,1,0", "100,100,30,1,0"))

	for i, idx := range stackIndices(b) {
		if idx != 0 {
			t.Errorf("object %d stack index = %d, want 0 outside standard", i, idx)
		}
	}
}

func TestStackingUnderSliderTail(t *testing.T) {
	// 0.28 px/ms, a 14px slider lasts 50ms
	b := mustNew(t, source(Standard, "0,0,0,2,0,L|100:0,1,14", "14,0,80,1,0"))

	got := stackIndices(b)
	if got[0] != 0 || got[1] != -1 {
		t.Errorf("stack indices = %v, want [0 -1]", got)
	}

	circle := b.StackedPosition(b.HitObjects[1])
	if circle.Sub(mgl32.Vec2{17.2, 3.2}).Len() > 1e-3 {
		t.Errorf("circle stacked position = %v, want [17.2 3.2]", circle)
	}
}

func TestNavigation(t *testing.T) {
	b := mustNew(t, source(Standard, "0,0,0,1,0", "0,0,100,1,0", "0,0,100,1,0", "0,0,200,1,0"))

	tests := []struct {
		name string
		got  objects.IHitObject
		want objects.IHitObject
	}{
		{"Prev(first)", b.Prev(b.HitObjects[0], false), nil},
		{"Prev(2)", b.Prev(b.HitObjects[2], false), b.HitObjects[1]},
		{"Prev(2, skip)", b.Prev(b.HitObjects[2], true), b.HitObjects[0]},
		{"Next(1, skip)", b.Next(b.HitObjects[1], true), b.HitObjects[3]},
		{"Next(last)", b.Next(b.HitObjects[3], false), nil},
		{"HitObjectAt(-50)", b.HitObjectAt(-50), b.HitObjects[0]},
		{"HitObjectAt(150)", b.HitObjectAt(150), b.HitObjects[2]},
		{"NextHitObject(0)", b.NextHitObject(0), b.HitObjects[1]},
		{"NextHitObject(200)", b.NextHitObject(200), nil},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestComboNumber(t *testing.T) {
	b := mustNew(t, source(Standard,
		"0,0,0,5,0",
		"0,0,100,1,0",
		"0,0,200,1,0",
		"256,192,300,12,0,800",
		"0,0,1000,1,0",
		"0,0,1100,1,0",
	))

	want := []int{1, 2, 3, 1, 1, 2}
	for i, obj := range b.HitObjects {
		if got := b.ComboNumber(obj); got != want[i] {
			t.Errorf("ComboNumber(object %d) = %d, want %d", i, got, want[i])
		}
	}
}

func TestPlayTimeAndDensity(t *testing.T) {
	b := mustNew(t, source(Standard, "0,0,1000,1,0", "256,192,2000,8,0,3000"))

	if got := b.PlayTime(); got != 2000 {
		t.Errorf("PlayTime = %v, want 2000", got)
	}

	if got := b.ObjectDensity(); got != 0.001 {
		t.Errorf("ObjectDensity = %v, want 0.001", got)
	}

	circles, sliders, spinners, holds := b.Counts()
	if circles != 1 || sliders != 0 || spinners != 1 || holds != 0 {
		t.Errorf("Counts = %d/%d/%d/%d, want 1/0/1/0", circles, sliders, spinners, holds)
	}

	empty := mustNew(t, source(Standard))
	if empty.PlayTime() != 0 || empty.ObjectDensity() != 0 || empty.HitObjectAt(0) != nil {
		t.Error("empty beatmap lookups should be zero or nil")
	}
}
