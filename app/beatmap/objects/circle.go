package objects

import "github.com/go-gl/mathgl/mgl32"

type Circle struct {
	HitObject
	Stacking
}

func (c *Circle) GetEndTime() float64 { return c.StartTime }

func (c *Circle) GetDuration() float64 { return 0 }

func (c *Circle) GetEndPosition() mgl32.Vec2 { return c.Position }

func (c *Circle) GetStackedStartPosition(radius float32) mgl32.Vec2 {
	return c.apply(c.Position, radius)
}

func (c *Circle) GetStackedEndPosition(radius float32) mgl32.Vec2 {
	return c.GetStackedStartPosition(radius)
}

func (c *Circle) EdgeTimes() []float64 {
	return []float64{c.StartTime}
}
