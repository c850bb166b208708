package preprocessing

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	base "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/preprocessing"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	NormalizedRadius        = 52.0
	CircleSizeBuffThreshold = 30.0

	// MinDeltaTime caps every strain interval at the equivalent of 375 BPM streaming
	MinDeltaTime = 50
)

type DifficultyObject struct {
	base.DifficultyHitObject

	diffObjects *base.Sequence[*DifficultyObject]

	lastLastObject objects.IHitObject

	IsSlider  bool
	IsSpinner bool

	// JumpDistance is the normalized distance from the cursor position after the previous object to this one
	JumpDistance float64

	// TravelDistance is the normalized distance the cursor travelled along the previous slider
	TravelDistance float64

	// Angle between (current-2, current-1, current), NaN without a current-2
	Angle float64

	StrainTime float64
}

func (o *DifficultyObject) HasAngle() bool {
	return !math.IsNaN(o.Angle)
}

func (o *DifficultyObject) Previous(backwardsIndex int) *DifficultyObject {
	return o.diffObjects.Previous(o.Index, backwardsIndex)
}

func (o *DifficultyObject) Next(forwardsIndex int) *DifficultyObject {
	return o.diffObjects.Next(o.Index, forwardsIndex)
}

// lazyCursor is where a cursor lazily following a slider ends, and how far it moved.
type lazyCursor struct {
	endPosition    mgl32.Vec2
	travelDistance float32
}

type builder struct {
	radius        float32
	followRadius  float32
	scalingFactor float32

	lazy map[*objects.Slider]lazyCursor
}

// CreateDifficultyObjects wraps every hit object after the first one.
func CreateDifficultyObjects(b *beatmap.Beatmap) *base.Sequence[*DifficultyObject] {
	radius := b.CircleRadius()

	bld := &builder{
		radius:       radius,
		followRadius: float32(b.Difficulty.CircleSize * 3),
		lazy:         make(map[*objects.Slider]lazyCursor),
	}

	// distances are scaled so that every map behaves as if it had the same circle size
	bld.scalingFactor = NormalizedRadius / radius

	if radius < CircleSizeBuffThreshold {
		smallCircleBonus := min(CircleSizeBuffThreshold-radius, 5) / 50
		bld.scalingFactor *= 1 + smallCircleBonus
	}

	return base.Build(b.HitObjects, 1, func(seq *base.Sequence[*DifficultyObject], index int, hitObjects []objects.IHitObject, i int) *DifficultyObject {
		var lastLast objects.IHitObject
		if i > 1 {
			lastLast = hitObjects[i-2]
		}

		return bld.newDifficultyObject(seq, index, hitObjects[i], lastLast, hitObjects[i-1])
	})
}

func (bld *builder) newDifficultyObject(seq *base.Sequence[*DifficultyObject], index int, hitObject, lastLastObject, lastObject objects.IHitObject) *DifficultyObject {
	obj := &DifficultyObject{
		DifficultyHitObject: base.NewDifficultyHitObject(index, hitObject, lastObject),
		diffObjects:         seq,
		lastLastObject:      lastLastObject,
		Angle:               math.NaN(),
	}

	switch hitObject.(type) {
	case *objects.Slider:
		obj.IsSlider = true
	case *objects.Spinner:
		obj.IsSpinner = true
	}

	bld.setDistances(obj)

	obj.StrainTime = max(obj.DeltaTime, MinDeltaTime)

	return obj
}

func (bld *builder) setDistances(o *DifficultyObject) {
	if lastSlider, ok := o.LastObject.(*objects.Slider); ok {
		o.TravelDistance = float64(bld.cursor(lastSlider).travelDistance * bld.scalingFactor)
	}

	lastCursorPosition := bld.endCursorPosition(o.LastObject)
	position := o.BaseObject.GetStackedStartPosition(bld.radius)

	// don't need to jump to reach spinners
	if !o.IsSpinner {
		o.JumpDistance = float64(position.Mul(bld.scalingFactor).Sub(lastCursorPosition.Mul(bld.scalingFactor)).Len())
	}

	if o.lastLastObject != nil {
		lastLastCursorPosition := bld.endCursorPosition(o.lastLastObject)

		v1 := lastLastCursorPosition.Sub(o.LastObject.GetStackedStartPosition(bld.radius))
		v2 := position.Sub(lastCursorPosition)

		dot := float64(v1.Dot(v2))
		det := float64(v1.X()*v2.Y() - v1.Y()*v2.X())

		o.Angle = math.Abs(math.Atan2(det, dot))
	}
}

func (bld *builder) endCursorPosition(obj objects.IHitObject) mgl32.Vec2 {
	if s, ok := obj.(*objects.Slider); ok {
		return bld.cursor(s).endPosition
	}

	return obj.GetStackedStartPosition(bld.radius)
}

// cursor moves a cursor from the slider head towards every tick and the end, dragging it only when it leaves the follow circle.
func (bld *builder) cursor(s *objects.Slider) lazyCursor {
	if c, ok := bld.lazy[s]; ok {
		return c
	}

	c := lazyCursor{endPosition: s.GetStackedStartPosition(bld.radius)}

	computeVertex := func(time float64) {
		diff := s.GetStackedPositionAt(time, bld.radius).Sub(c.endPosition)
		dist := diff.Len()

		if dist > bld.followRadius {
			diff = diff.Normalize()
			dist -= bld.followRadius
			c.endPosition = c.endPosition.Add(diff.Mul(dist))
			c.travelDistance += dist
		}
	}

	for _, time := range s.TickTimes() {
		computeVertex(time)
	}

	computeVertex(s.GetEndTime())

	bld.lazy[s] = c

	return c
}
