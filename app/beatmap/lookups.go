package beatmap

import (
	"sort"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/timing"
	"github.com/Givikap120/beatmap-difficulty/framework/math/mutils"
	"github.com/go-gl/mathgl/mgl32"
)

// Prev returns the object before obj, nil at the start. With skipConcurrent objects sharing obj's start time are passed over.
func (b *Beatmap) Prev(obj objects.IHitObject, skipConcurrent bool) objects.IHitObject {
	for i := obj.GetID() - 1; i >= 0; i-- {
		prev := b.HitObjects[i]
		if !skipConcurrent || !mutils.AlmostEqual(prev.GetStartTime(), obj.GetStartTime()) {
			return prev
		}
	}

	return nil
}

// Next returns the object after obj, nil at the end. With skipConcurrent objects sharing obj's start time are passed over.
func (b *Beatmap) Next(obj objects.IHitObject, skipConcurrent bool) objects.IHitObject {
	for i := obj.GetID() + 1; i < len(b.HitObjects); i++ {
		next := b.HitObjects[i]
		if !skipConcurrent || !mutils.AlmostEqual(next.GetStartTime(), obj.GetStartTime()) {
			return next
		}
	}

	return nil
}

// search returns the index of the last object starting at or before time, -1 if there is none.
func (b *Beatmap) search(time float64) int {
	return sort.Search(len(b.HitObjects), func(i int) bool {
		return b.HitObjects[i].GetStartTime() > time
	}) - 1
}

// HitObjectAt returns the object starting at or most recently before time, or the first one if time precedes all objects.
func (b *Beatmap) HitObjectAt(time float64) objects.IHitObject {
	if len(b.HitObjects) == 0 {
		return nil
	}

	return b.HitObjects[max(b.search(time), 0)]
}

// NextHitObject returns the object after the one at time, nil past the last one.
func (b *Beatmap) NextHitObject(time float64) objects.IHitObject {
	if len(b.HitObjects) == 0 {
		return nil
	}

	i := b.search(time)
	if i < 0 {
		return b.HitObjects[0]
	}

	if i+1 >= len(b.HitObjects) {
		return nil
	}

	return b.HitObjects[i+1]
}

func (b *Beatmap) TimingLineAt(time float64) timing.Line {
	return b.Timing.LineAt(time)
}

func (b *Beatmap) StackedPosition(obj objects.IHitObject) mgl32.Vec2 {
	return obj.GetStackedStartPosition(b.CircleRadius())
}

func (b *Beatmap) StackedEndPosition(obj objects.IHitObject) mgl32.Vec2 {
	return obj.GetStackedEndPosition(b.CircleRadius())
}

// Counts returns the number of circles, sliders, spinners and hold notes.
func (b *Beatmap) Counts() (circles, sliders, spinners, holds int) {
	for _, obj := range b.HitObjects {
		switch obj.(type) {
		case *objects.Circle:
			circles++
		case *objects.Slider:
			sliders++
		case *objects.Spinner:
			spinners++
		case *objects.HoldNote:
			holds++
		}
	}

	return
}

// PlayTime is the time from the first object's start to the last object's end.
func (b *Beatmap) PlayTime() float64 {
	if len(b.HitObjects) == 0 {
		return 0
	}

	return b.HitObjects[len(b.HitObjects)-1].GetEndTime() - b.HitObjects[0].GetStartTime()
}

// ObjectDensity is objects per ms of play time, 0 when there is no play time.
func (b *Beatmap) ObjectDensity() float64 {
	playTime := b.PlayTime()
	if playTime <= 0 {
		return 0
	}

	return float64(len(b.HitObjects)) / playTime
}

// ComboNumber returns the number drawn on obj. The first object, spinners and objects after spinners start new combos.
func (b *Beatmap) ComboNumber(obj objects.IHitObject) int {
	combo := 1

	for obj != nil {
		prev := b.Prev(obj, false)

		_, isSpinner := obj.(*objects.Spinner)
		_, prevSpinner := prev.(*objects.Spinner)

		if obj.IsNewCombo() || isSpinner || prevSpinner || prev == nil {
			break
		}

		obj = prev
		combo++
	}

	return combo
}
