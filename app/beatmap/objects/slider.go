package objects

import (
	"fmt"
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/timing"
	"github.com/go-gl/mathgl/mgl32"
)

// EdgeSample is the sampleset:addition pair of one slider edge.
type EdgeSample struct {
	Sampleset timing.Sampleset
	Addition  timing.Sampleset
}

type Slider struct {
	HitObject
	Stacking

	CurveType CurveType

	// Nodes are the control points, head included. Red anchors appear twice in a row
	Nodes []mgl32.Vec2

	// EdgeAmount counts the slides, 1 for a slider without reverses
	EdgeAmount  int
	PixelLength float64

	// EdgeHitSounds and EdgeSamples go head, reverses, tail
	EdgeHitSounds []HitSound
	EdgeSamples   []EdgeSample

	timed         bool
	velocity      float64
	curveDuration float64
	endTime       float64
	tickTimes     []float64
	path          *Path
}

// ApplyTiming derives the velocity, end time and ticks from the timing lines and difficulty settings. It fails when no uninherited line is in effect at the head.
func (s *Slider) ApplyTiming(t *timing.Timing, settings difficulty.Settings) error {
	line, err := t.UninheritedAt(s.StartTime)
	if err != nil {
		return fmt.Errorf("slider at %v: %w", s.StartTime, err)
	}

	s.velocity = 100 * t.SvMultAt(s.StartTime) * settings.SliderMultiplier / line.MsPerBeat

	length := s.PixelLength
	if length <= 0 {
		length = s.Path().Length()
	}

	s.curveDuration = length / s.velocity

	exactEnd := s.StartTime + s.curveDuration*float64(s.EdgeAmount)

	unsnap, err := t.PracticalUnsnap(exactEnd)
	if err != nil {
		return fmt.Errorf("slider at %v: %w", s.StartTime, err)
	}

	s.endTime = exactEnd + unsnap

	theoretical, err := t.TheoreticalUnsnap(s.StartTime)
	if err != nil {
		return fmt.Errorf("slider at %v: %w", s.StartTime, err)
	}

	theoreticalStart := s.StartTime - theoretical

	// ticks can not land on the same ms as the tail
	ticks := int((s.endTime - s.StartTime - 1) / line.MsPerBeat * settings.SliderTickRate)

	s.tickTimes = make([]float64, 0, max(ticks, 0))
	for i := 1; i <= ticks; i++ {
		s.tickTimes = append(s.tickTimes, math.Trunc(float64(i)*line.MsPerBeat/settings.SliderTickRate+theoreticalStart))
	}

	s.timed = true

	return nil
}

// Timed reports whether ApplyTiming ran. Untimed sliders end at their head.
func (s *Slider) Timed() bool {
	return s.timed
}

func (s *Slider) GetEndTime() float64 {
	if !s.timed {
		return s.StartTime
	}

	return s.endTime
}

func (s *Slider) GetDuration() float64 {
	return s.GetEndTime() - s.StartTime
}

// Velocity is the ball speed in osu!pixels per ms.
func (s *Slider) Velocity() float64 {
	return s.velocity
}

// CurveDuration is the time one slide takes, ignoring reverses.
func (s *Slider) CurveDuration() float64 {
	return s.curveDuration
}

// TickTimes returns the truncated times of every slider tick.
func (s *Slider) TickTimes() []float64 {
	out := make([]float64, len(s.tickTimes))
	copy(out, s.tickTimes)

	return out
}

// Path returns the curve approximation built by Parse.
func (s *Slider) Path() *Path {
	if s.path == nil {
		return NewPath(s.CurveType, s.Nodes, s.PixelLength)
	}

	return s.path
}

// CurveFraction returns how far along the curve the ball is at time, from 0 to 1, following reverses.
func (s *Slider) CurveFraction(time float64) float64 {
	if s.curveDuration <= 0 {
		return 0
	}

	division := (time - s.StartTime) / s.curveDuration
	slide := math.Floor(division)
	fraction := division - slide

	if int(slide)%2 != 0 {
		fraction = 1 - fraction
	}

	return fraction
}

// GetPositionAt returns the unstacked ball position at time.
func (s *Slider) GetPositionAt(time float64) mgl32.Vec2 {
	return s.Path().PointAt(s.CurveFraction(time))
}

func (s *Slider) GetStackedPositionAt(time float64, radius float32) mgl32.Vec2 {
	return s.apply(s.GetPositionAt(time), radius)
}

// GetEndPosition returns where the slider ends: the path end for an odd number of slides, otherwise the head.
func (s *Slider) GetEndPosition() mgl32.Vec2 {
	if s.EdgeAmount%2 == 1 {
		return s.Path().PointAt(1)
	}

	return s.Position
}

func (s *Slider) GetStackedStartPosition(radius float32) mgl32.Vec2 {
	return s.apply(s.Position, radius)
}

func (s *Slider) GetStackedEndPosition(radius float32) mgl32.Vec2 {
	return s.apply(s.GetEndPosition(), radius)
}

// RedAnchors returns the nodes that start a new segment.
func (s *Slider) RedAnchors() []mgl32.Vec2 {
	var anchors []mgl32.Vec2

	for i := 1; i < len(s.Nodes); i++ {
		if s.Nodes[i] == s.Nodes[i-1] {
			anchors = append(anchors, s.Nodes[i])
		}
	}

	return anchors
}

func (s *Slider) EdgeTimes() []float64 {
	times := []float64{s.StartTime}

	duration := s.CurveDuration()
	for i := 0; i < s.EdgeAmount; i++ {
		times = append(times, s.StartTime+duration*float64(i+1))
	}

	return times
}

func (s *Slider) StartHitSound() HitSound {
	return s.EdgeHitSounds[0]
}

func (s *Slider) EndHitSound() HitSound {
	return s.EdgeHitSounds[len(s.EdgeHitSounds)-1]
}

// ReverseHitSounds returns the hit sounds of the edges between head and tail.
func (s *Slider) ReverseHitSounds() []HitSound {
	if len(s.EdgeHitSounds) < 3 {
		return nil
	}

	return s.EdgeHitSounds[1 : len(s.EdgeHitSounds)-1]
}
