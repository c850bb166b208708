package skills

import (
	"math"
	"strconv"
	"testing"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/preprocessing"
)

type testObject struct {
	preprocessing.DifficultyHitObject
}

func chain(t *testing.T, times ...float64) []*testObject {
	t.Helper()

	hitObjects := make([]objects.IHitObject, 0, len(times))

	for _, time := range times {
		obj, err := objects.Parse([]string{"0", "0", strconv.FormatFloat(time, 'f', -1, 64), "1", "0"})
		if err != nil {
			t.Fatalf("objects.Parse error: %v", err)
		}

		hitObjects = append(hitObjects, obj)
	}

	seq := preprocessing.Build(hitObjects, 1, func(_ *preprocessing.Sequence[*testObject], index int, hitObjects []objects.IHitObject, i int) *testObject {
		return &testObject{preprocessing.NewDifficultyHitObject(index, hitObjects[i], hitObjects[i-1])}
	})

	return seq.Items()
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind          Kind
		name, display string
	}{
		{Aim, "aim", "Aim"},
		{Speed, "speed", "Speed"},
		{Colour, "colour", "Colour"},
		{Rhythm, "rhythm", "Rhythm"},
		{Stamina, "stamina", "Stamina"},
		{Peaks, "peaks", "Peaks"},
		{Kind(42), "unknown", "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}

		if got := tt.kind.DisplayName(); got != tt.display {
			t.Errorf("DisplayName() = %q, want %q", got, tt.display)
		}
	}
}

func TestWeightedSum(t *testing.T) {
	tests := []struct {
		peaks []float64
		want  float64
	}{
		{nil, 0},
		{[]float64{2}, 2},
		{[]float64{1, 2}, 2 + 0.9},
		{[]float64{0, 3, 1, 2}, 3 + 2*0.9 + 1*0.81},
	}

	for _, tt := range tests {
		if got := WeightedSum(tt.peaks); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WeightedSum(%v) = %v, want %v", tt.peaks, got, tt.want)
		}
	}

	peaks := []float64{1, 3}
	WeightedSum(peaks)

	if peaks[0] != 1 {
		t.Error("WeightedSum reordered its input")
	}
}

func newConstantSkill(base float64) *StrainDecay[*testObject] {
	skill := NewStrainDecay[*testObject](Aim, 1, base)
	skill.StrainValueOf = func(*testObject) float64 { return 1 }

	return skill
}

func TestStrainDecay(t *testing.T) {
	objs := chain(t, 0, 1000, 2000)
	skill := newConstantSkill(0.5)

	skill.Process(objs[0])

	if skill.CurrentStrain != 1 {
		t.Errorf("CurrentStrain = %v, want 1", skill.CurrentStrain)
	}

	skill.Process(objs[1])

	if skill.CurrentStrain != 1.5 {
		t.Errorf("CurrentStrain = %v, want 1.5", skill.CurrentStrain)
	}

	if got := skill.DifficultyValue(); got != 1.5 {
		t.Errorf("DifficultyValue() = %v, want 1.5", got)
	}

	if got := skill.DifficultyValue(); got != 1.5 {
		t.Errorf("second DifficultyValue() = %v, want 1.5", got)
	}

	skill.SaveCurrentPeak()
	skill.StartNewSectionFrom(2400, objs[1])

	want := 1.5 * math.Pow(0.5, 1.4)
	peaks := skill.CurrentStrainPeaks()

	if len(peaks) != 2 || peaks[0] != 1.5 || math.Abs(peaks[1]-want) > 1e-12 {
		t.Errorf("CurrentStrainPeaks() = %v, want [1.5 %v]", peaks, want)
	}
}

func TestSectionStartsBeforeLastObject(t *testing.T) {
	objs := chain(t, 0, 500, 600)

	for _, base := range []float64{0, 0.3} {
		skill := newConstantSkill(base)

		skill.Process(objs[0])
		skill.SaveCurrentPeak()
		skill.StartNewSectionFrom(400, objs[1])

		peaks := skill.CurrentStrainPeaks()
		if got := peaks[len(peaks)-1]; got != 1 {
			t.Errorf("base %v: initial strain = %v, want 1", base, got)
		}

		skill.Process(objs[1])

		if got := skill.DifficultyValue(); math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("base %v: DifficultyValue() = %v, want finite", base, got)
		}
	}
}

func TestFinalize(t *testing.T) {
	objs := chain(t, 0, 100)
	skill := newConstantSkill(0.15)

	skill.Process(objs[0])
	before := skill.DifficultyValue()

	skill.Finalize()
	skill.Finalize()

	if got := skill.DifficultyValue(); got != before {
		t.Errorf("DifficultyValue() after Finalize = %v, want %v", got, before)
	}

	if got := len(skill.CurrentStrainPeaks()); got != 1 {
		t.Errorf("len(CurrentStrainPeaks()) = %d, want 1", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Process after Finalize did not panic")
		}
	}()

	skill.Process(objs[0])
}

func TestStrainSkillInterface(t *testing.T) {
	var s Skill[*testObject] = newConstantSkill(0.3)

	if _, ok := s.(StrainSkill[*testObject]); !ok {
		t.Error("StrainDecay does not implement StrainSkill")
	}

	if s.Kind() != Aim {
		t.Errorf("Kind() = %v, want %v", s.Kind(), Aim)
	}
}
