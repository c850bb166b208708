package objects

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/timing"
	"github.com/go-gl/mathgl/mgl32"
)

func mustParse(t *testing.T, code string) IHitObject {
	t.Helper()

	obj, err := Parse(strings.Split(code, ","))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", code, err)
	}

	return obj
}

func vecNear(a, b mgl32.Vec2) bool {
	return a.Sub(b).Len() < 1e-3
}

func TestParseCircle(t *testing.T) {
	obj := mustParse(t, "131,304,1166,5,2,1:2:3:40:hit.wav")

	c, ok := obj.(*Circle)
	if !ok {
		t.Fatalf("Parse type = %T, want *Circle", obj)
	}

	if c.GetStartTime() != 1166 || c.GetEndTime() != 1166 {
		t.Errorf("times = %v-%v, want 1166-1166", c.GetStartTime(), c.GetEndTime())
	}

	if !c.IsNewCombo() {
		t.Error("IsNewCombo = false, want true")
	}

	if !c.HasHitSound(Whistle) || c.HasHitSound(Clap) {
		t.Errorf("hit sound = %d, want whistle only", c.HitSound)
	}

	want := Extras{Sampleset: timing.SamplesetNormal, Addition: timing.SamplesetSoft, CustomIndex: 3, Volume: 40, Filename: "hit.wav"}
	if c.Extras != want {
		t.Errorf("Extras = %+v, want %+v", c.Extras, want)
	}
}

func TestParseSpinnerAndHoldNote(t *testing.T) {
	spinner, ok := mustParse(t, "256,192,187300,12,0,188889,1:0:0:0:").(*Spinner)
	if !ok {
		t.Fatal("spinner line did not parse as *Spinner")
	}

	if spinner.GetEndTime() != 188889 {
		t.Errorf("spinner end = %v, want 188889", spinner.GetEndTime())
	}

	if got := spinner.EdgeTimes(); len(got) != 2 || got[1] != 188889 {
		t.Errorf("spinner EdgeTimes = %v, want [187300 188889]", got)
	}

	hold, ok := mustParse(t, "448,192,243437,128,2,247861:3:2:1:70:").(*HoldNote)
	if !ok {
		t.Fatal("hold note line did not parse as *HoldNote")
	}

	if hold.GetEndTime() != 247861 {
		t.Errorf("hold end = %v, want 247861", hold.GetEndTime())
	}

	if hold.Extras.Sampleset != timing.SamplesetDrum || hold.Extras.Volume != 70 {
		t.Errorf("hold extras = %+v, want drum sampleset at volume 70", hold.Extras)
	}
}

func TestParseSlider(t *testing.T) {
	s, ok := mustParse(t, "319,179,1392,6,0,B|389:160|389:160|450:200,3,62.5,2|0|8|4,1:0|2:0|0:0|3:2,0:0:0:0:").(*Slider)
	if !ok {
		t.Fatal("slider line did not parse as *Slider")
	}

	if s.CurveType != Bezier {
		t.Errorf("CurveType = %v, want B", s.CurveType)
	}

	if len(s.Nodes) != 4 || s.Nodes[0] != (mgl32.Vec2{319, 179}) {
		t.Errorf("Nodes = %v, want head plus three nodes", s.Nodes)
	}

	if anchors := s.RedAnchors(); len(anchors) != 1 || anchors[0] != (mgl32.Vec2{389, 160}) {
		t.Errorf("RedAnchors = %v, want [389 160]", anchors)
	}

	if s.EdgeAmount != 3 || s.PixelLength != 62.5 {
		t.Errorf("edges/length = %d/%v, want 3/62.5", s.EdgeAmount, s.PixelLength)
	}

	if s.StartHitSound() != Whistle || s.EndHitSound() != Finish {
		t.Errorf("edge hit sounds = %v, want whistle head and finish tail", s.EdgeHitSounds)
	}

	if rev := s.ReverseHitSounds(); len(rev) != 2 || rev[1] != Clap {
		t.Errorf("ReverseHitSounds = %v, want [0 8]", rev)
	}

	if s.EdgeSamples[3] != (EdgeSample{Sampleset: timing.SamplesetDrum, Addition: timing.SamplesetSoft}) {
		t.Errorf("tail sample = %+v, want drum/soft", s.EdgeSamples[3])
	}
}

func TestParseSliderEdgeFallback(t *testing.T) {
	s := mustParse(t, "0,0,1000,2,4,L|100:0,2,100").(*Slider)

	if len(s.EdgeHitSounds) != 3 {
		t.Fatalf("EdgeHitSounds = %v, want 3 entries", s.EdgeHitSounds)
	}

	for i, sound := range s.EdgeHitSounds {
		if sound != Finish {
			t.Errorf("edge %d hit sound = %v, want finish", i, sound)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"abc,0,100,1,0",
		"0,0,100",
		"0,0,100,2,0,L|1:x,1,100",
		"0,0,100,2,0,L|100:0,0,100",
		"0,0,100,8,0",
	}

	for _, code := range tests {
		_, err := Parse(strings.Split(code, ","))
		if !errors.Is(err, fields.ErrInvalidBeatmapData) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidBeatmapData", code, err)
		}
	}
}

func TestComboSkip(t *testing.T) {
	c := mustParse(t, "0,0,0,53,0").(*Circle)

	if got := c.ComboSkip(); got != 3 {
		t.Errorf("ComboSkip = %d, want 3", got)
	}
}

func TestStackedPosition(t *testing.T) {
	c := mustParse(t, "100,100,0,1,0").(*Circle)
	c.StackIndex = 2

	want := mgl32.Vec2{100 - 6.4, 100 - 6.4}
	if got := c.GetStackedStartPosition(32); !vecNear(got, want) {
		t.Errorf("GetStackedStartPosition = %v, want %v", got, want)
	}

	if c.GetStartPosition() != (mgl32.Vec2{100, 100}) {
		t.Errorf("GetStartPosition = %v, want unstacked", c.GetStartPosition())
	}
}

func TestSliderTiming(t *testing.T) {
	line, err := timing.ParseLine([]string{"0", "400", "4", "2", "0", "100", "1", "0"})
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	tm := timing.New([]timing.Line{line})

	settings := difficulty.Default()
	settings.SliderMultiplier = 2

	s := mustParse(t, "0,0,1000,2,0,L|200:0,2,125").(*Slider)
	if err = s.ApplyTiming(tm, settings); err != nil {
		t.Fatalf("ApplyTiming error: %v", err)
	}

	if s.Velocity() != 0.5 {
		t.Errorf("Velocity = %v, want 0.5", s.Velocity())
	}

	if s.CurveDuration() != 250 {
		t.Errorf("CurveDuration = %v, want 250", s.CurveDuration())
	}

	if s.GetEndTime() != 1500 {
		t.Errorf("GetEndTime = %v, want 1500", s.GetEndTime())
	}

	if ticks := s.TickTimes(); len(ticks) != 1 || ticks[0] != 1400 {
		t.Errorf("TickTimes = %v, want [1400]", ticks)
	}

	fractions := []struct {
		time float64
		want float64
	}{
		{1000, 0},
		{1125, 0.5},
		{1250, 1},
		{1375, 0.5},
	}

	for _, tt := range fractions {
		if got := s.CurveFraction(tt.time); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CurveFraction(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}

	if got := s.GetPositionAt(1250); !vecNear(got, mgl32.Vec2{125, 0}) {
		t.Errorf("GetPositionAt(1250) = %v, want [125 0]", got)
	}

	if got := s.GetEndPosition(); got != (mgl32.Vec2{0, 0}) {
		t.Errorf("GetEndPosition = %v, want head for an even edge count", got)
	}

	if edges := s.EdgeTimes(); len(edges) != 3 || edges[1] != 1250 || edges[2] != 1500 {
		t.Errorf("EdgeTimes = %v, want [1000 1250 1500]", edges)
	}
}

func TestSliderTimingWithoutUninheritedLine(t *testing.T) {
	line, err := timing.ParseLine([]string{"5000", "500", "4", "2", "0", "100", "1", "0"})
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	s := mustParse(t, "0,0,1000,2,0,L|200:0,1,140").(*Slider)

	err = s.ApplyTiming(timing.New([]timing.Line{line}), difficulty.Default())
	if !errors.Is(err, timing.ErrNoUninheritedLine) {
		t.Errorf("ApplyTiming error = %v, want ErrNoUninheritedLine", err)
	}
}

func TestPathLength(t *testing.T) {
	tests := []struct {
		name   string
		curve  CurveType
		nodes  []mgl32.Vec2
		length float64
		end    mgl32.Vec2
	}{
		{"trimmed", Linear, []mgl32.Vec2{{0, 0}, {100, 0}, {100, 100}}, 150, mgl32.Vec2{100, 50}},
		{"extended", Linear, []mgl32.Vec2{{0, 0}, {50, 0}}, 80, mgl32.Vec2{80, 0}},
		{"bezier line", Bezier, []mgl32.Vec2{{0, 0}, {50, 0}, {100, 0}}, 100, mgl32.Vec2{100, 0}},
		{"collinear perfect", Perfect, []mgl32.Vec2{{0, 0}, {50, 0}, {100, 0}}, 100, mgl32.Vec2{100, 0}},
	}

	for _, tt := range tests {
		p := NewPath(tt.curve, tt.nodes, tt.length)

		if math.Abs(p.Length()-tt.length) > 1e-3 {
			t.Errorf("%s: Length = %v, want %v", tt.name, p.Length(), tt.length)
		}

		if got := p.PointAt(1); !vecNear(got, tt.end) {
			t.Errorf("%s: PointAt(1) = %v, want %v", tt.name, got, tt.end)
		}
	}
}

func TestBezierHugeCoordinates(t *testing.T) {
	codes := []string{
		"0,0,0,2,0,B|5000000:5000000|0:1,1,100",
		"0,0,0,2,0,B|1e18:1e18|0:1,1,100",
	}

	for _, code := range codes {
		done := make(chan *Slider, 1)

		go func() {
			obj, err := Parse(strings.Split(code, ","))
			if err != nil {
				done <- nil
				return
			}

			s, _ := obj.(*Slider)
			done <- s
		}()

		select {
		case s := <-done:
			if s != nil && len(s.Path().Points()) > 1<<bezierMaxDepth+2 {
				t.Errorf("Parse(%q) path has %d points, want at most %d", code, len(s.Path().Points()), 1<<bezierMaxDepth+2)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("Parse(%q) did not return", code)
		}
	}
}

func TestPerfectCircle(t *testing.T) {
	// half circle of radius 50 around (50, 0)
	p := NewPath(Perfect, []mgl32.Vec2{{0, 0}, {50, 50}, {100, 0}}, 0)

	if math.Abs(p.Length()-50*math.Pi) > 0.5 {
		t.Errorf("Length = %v, want about %v", p.Length(), 50*math.Pi)
	}

	mid := p.PointAt(0.5)
	if math.Abs(float64(mid.Sub(mgl32.Vec2{50, 0}).Len())-50) > 0.5 {
		t.Errorf("PointAt(0.5) = %v, want a point on the circle", mid)
	}
}

func TestSplitAtRedAnchors(t *testing.T) {
	nodes := []mgl32.Vec2{{0, 0}, {10, 0}, {10, 0}, {20, 10}, {30, 0}}

	segments := SplitAtRedAnchors(nodes)
	if len(segments) != 2 || len(segments[0]) != 2 || len(segments[1]) != 3 {
		t.Errorf("SplitAtRedAnchors = %v, want 2 and 3 nodes", segments)
	}
}
