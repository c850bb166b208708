package difficulty

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
)

func TestParseClamps(t *testing.T) {
	s, err := Parse(map[string]string{
		"HPDrainRate":       "11",
		"CircleSize":        "4.2",
		"OverallDifficulty": "-1",
		"ApproachRate":      "9.7",
		"SliderMultiplier":  "5",
		"SliderTickRate":    "0.1",
	})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := Settings{
		HPDrainRate:       10,
		CircleSize:        4.2,
		OverallDifficulty: 0,
		ApproachRate:      9.7,
		SliderMultiplier:  3.6,
		SliderTickRate:    0.5,
	}

	if s != want {
		t.Errorf("Parse = %+v, want %+v", s, want)
	}
}

func TestParseApproachRateFallsBackToOD(t *testing.T) {
	s, err := Parse(map[string]string{"OverallDifficulty": "7"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if s.ApproachRate != 7 {
		t.Errorf("ApproachRate = %v, want 7", s.ApproachRate)
	}

	if s.SliderMultiplier != 1.4 {
		t.Errorf("SliderMultiplier = %v, want 1.4", s.SliderMultiplier)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(map[string]string{"CircleSize": "4,2"})
	if !errors.Is(err, fields.ErrInvalidBeatmapData) {
		t.Errorf("Parse error = %v, want ErrInvalidBeatmapData", err)
	}
}

func TestDifficultyRange(t *testing.T) {
	tests := []struct {
		ar      float64
		preempt float64
		fadeIn  float64
	}{
		{0, 1200, 1800},
		{5, 800, 1200},
		{10, 300, 450},
		{9, 400, 600},
	}

	for _, tt := range tests {
		s := Settings{ApproachRate: tt.ar}

		if got := s.Preempt(); math.Abs(got-tt.preempt) > 1e-9 {
			t.Errorf("Preempt(AR%v) = %v, want %v", tt.ar, got, tt.preempt)
		}

		if got := s.FadeIn(); math.Abs(got-tt.fadeIn) > 1e-9 {
			t.Errorf("FadeIn(AR%v) = %v, want %v", tt.ar, got, tt.fadeIn)
		}
	}
}

func TestCircleRadius(t *testing.T) {
	tests := []struct {
		cs   float64
		want float32
	}{
		{5, 32},
		{0, 54.4},
		{10, 9.6},
	}

	for _, tt := range tests {
		got := Settings{CircleSize: tt.cs}.CircleRadius()
		if math.Abs(float64(got-tt.want)) > 1e-4 {
			t.Errorf("CircleRadius(CS%v) = %v, want %v", tt.cs, got, tt.want)
		}
	}
}

func TestHitWindows(t *testing.T) {
	tests := []struct {
		od     float64
		result HitResult
		osu    float64
		taiko  float64
	}{
		{0, Great, 80, 50},
		{5, Great, 50, 35},
		{10, Great, 20, 20},
		{5, Ok, 100, 80},
		{5, Meh, 150, 0},
		{10, Miss, 0, 70},
	}

	for _, tt := range tests {
		s := Settings{OverallDifficulty: tt.od}

		if got := s.OsuHitWindow(tt.result); got != tt.osu {
			t.Errorf("OsuHitWindow(OD%v, %v) = %v, want %v", tt.od, tt.result, got, tt.osu)
		}

		if got := s.TaikoHitWindow(tt.result); got != tt.taiko {
			t.Errorf("TaikoHitWindow(OD%v, %v) = %v, want %v", tt.od, tt.result, got, tt.taiko)
		}
	}
}

func TestTierFromStarRating(t *testing.T) {
	tests := []struct {
		stars float64
		want  Tier
	}{
		{0, Easy},
		{1.99, Easy},
		{2, Normal},
		{2.7, Hard},
		{4.5, Insane},
		{6, Expert},
		{6.5, Ultra},
		{12, Ultra},
	}

	for _, tt := range tests {
		if got := TierFromStarRating(tt.stars); got != tt.want {
			t.Errorf("TierFromStarRating(%v) = %v, want %v", tt.stars, got, tt.want)
		}
	}
}

func TestParseTier(t *testing.T) {
	for tier := Easy; tier <= Ultra; tier++ {
		got, err := ParseTier(strings.ToLower(tier.String()))
		if err != nil || got != tier {
			t.Errorf("ParseTier(%q) = %v, %v, want %v", strings.ToLower(tier.String()), got, err, tier)
		}
	}

	if _, err := ParseTier("extreme"); err == nil {
		t.Error("ParseTier(\"extreme\") error = nil, want an error")
	}
}
