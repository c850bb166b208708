package taiko

import (
	"strings"
	"testing"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
)

func mustBeatmap(t *testing.T, hitObjects ...string) *beatmap.Beatmap {
	t.Helper()

	src := beatmap.Source{
		Mode:        beatmap.Taiko,
		Difficulty:  map[string]string{},
		TimingLines: [][]string{strings.Split("0,500,4,2,0,100,1,0", ",")},
	}

	for _, line := range hitObjects {
		src.HitObjects = append(src.HitObjects, strings.Split(line, ","))
	}

	b, err := beatmap.New(src)
	if err != nil {
		t.Fatalf("beatmap.New error: %v", err)
	}

	return b
}

func TestColours(t *testing.T) {
	b := mustBeatmap(t,
		"256,192,0,1,0",
		"256,192,100,1,2",
		"256,192,200,1,8",
		"256,192,300,1,4",
		"256,192,400,1,6",
	)

	tests := []struct {
		don, finisher, mono bool
	}{
		{true, false, false},
		{false, false, false},
		{false, false, true},
		{true, true, false},
		{false, true, false},
	}

	for i, tt := range tests {
		obj := b.HitObjects[i]

		if got := IsDon(obj); got != tt.don {
			t.Errorf("IsDon(%d) = %v, want %v", i, got, tt.don)
		}

		if got := IsKat(obj); got == tt.don {
			t.Errorf("IsKat(%d) = %v, want %v", i, got, !tt.don)
		}

		if got := IsFinisher(obj); got != tt.finisher {
			t.Errorf("IsFinisher(%d) = %v, want %v", i, got, tt.finisher)
		}

		if got := IsMono(b, obj); got != tt.mono {
			t.Errorf("IsMono(%d) = %v, want %v", i, got, tt.mono)
		}
	}
}

func TestPatternBoundaries(t *testing.T) {
	// gaps 200, 150, 100, 100, 150, 200
	b := mustBeatmap(t,
		"256,192,0,1,0",
		"256,192,200,1,0",
		"256,192,350,1,0",
		"256,192,450,1,0",
		"256,192,550,1,0",
		"256,192,700,1,0",
		"256,192,900,1,0",
	)

	tests := []struct {
		begin, end bool
	}{
		{true, false},
		{true, false},
		{true, false},
		{false, false},
		{false, true},
		{false, true},
		{false, true},
	}

	for i, tt := range tests {
		obj := b.HitObjects[i]

		if got := IsAtBeginningOfPattern(b, obj); got != tt.begin {
			t.Errorf("IsAtBeginningOfPattern(%d) = %v, want %v", i, got, tt.begin)
		}

		if got := IsAtEndOfPattern(b, obj); got != tt.end {
			t.Errorf("IsAtEndOfPattern(%d) = %v, want %v", i, got, tt.end)
		}

		middle := !tt.begin && !tt.end
		if got := IsInMiddleOfPattern(b, obj); got != middle {
			t.Errorf("IsInMiddleOfPattern(%d) = %v, want %v", i, got, middle)
		}
	}
}

func TestPatternBreaksOnNonCircles(t *testing.T) {
	b := mustBeatmap(t,
		"256,192,0,1,0",
		"256,192,100,12,0,500",
		"256,192,600,1,0",
		"256,192,700,1,0",
		"256,192,1500,1,0",
	)

	if !IsNotInPattern(b, b.HitObjects[0]) {
		t.Error("circle before a spinner should stand alone")
	}

	if !IsAtBeginningOfPattern(b, b.HitObjects[2]) {
		t.Error("circle after a spinner should begin a pattern")
	}

	if IsAtEndOfPattern(b, b.HitObjects[2]) {
		t.Error("circle followed by a tighter gap should not end a pattern")
	}

	if !IsAtEndOfPattern(b, b.HitObjects[4]) {
		t.Error("last circle should end a pattern")
	}
}
