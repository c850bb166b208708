package objects

import "github.com/go-gl/mathgl/mgl32"

type Spinner struct {
	HitObject
	EndTime float64
}

func (s *Spinner) GetEndTime() float64 { return s.EndTime }

func (s *Spinner) GetDuration() float64 { return s.EndTime - s.StartTime }

func (s *Spinner) GetEndPosition() mgl32.Vec2 { return s.Position }

func (s *Spinner) GetStackedStartPosition(float32) mgl32.Vec2 { return s.Position }

func (s *Spinner) GetStackedEndPosition(float32) mgl32.Vec2 { return s.Position }

func (s *Spinner) EdgeTimes() []float64 {
	return []float64{s.StartTime, s.EndTime}
}

// HoldNote is a mania long note, its column is encoded in the x position.
type HoldNote struct {
	HitObject
	EndTime float64
}

func (h *HoldNote) GetEndTime() float64 { return h.EndTime }

func (h *HoldNote) GetDuration() float64 { return h.EndTime - h.StartTime }

func (h *HoldNote) GetEndPosition() mgl32.Vec2 { return h.Position }

func (h *HoldNote) GetStackedStartPosition(float32) mgl32.Vec2 { return h.Position }

func (h *HoldNote) GetStackedEndPosition(float32) mgl32.Vec2 { return h.Position }

func (h *HoldNote) EdgeTimes() []float64 {
	return []float64{h.StartTime, h.EndTime}
}
