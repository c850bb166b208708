package preprocessing

import (
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
)

// DifficultyHitObject is the mode independent part every difficulty object embeds.
type DifficultyHitObject struct {
	// Index is the position in the owning Sequence
	Index int

	BaseObject objects.IHitObject
	LastObject objects.IHitObject

	// DeltaTime is the time elapsed since LastObject started
	DeltaTime float64

	StartTime float64
	EndTime   float64
}

func NewDifficultyHitObject(index int, hitObject, lastObject objects.IHitObject) DifficultyHitObject {
	return DifficultyHitObject{
		Index:      index,
		BaseObject: hitObject,
		LastObject: lastObject,
		DeltaTime:  hitObject.GetStartTime() - lastObject.GetStartTime(),
		StartTime:  hitObject.GetStartTime(),
		EndTime:    hitObject.GetEndTime(),
	}
}

func (o *DifficultyHitObject) Base() *DifficultyHitObject { return o }

// Object is implemented by every mode's difficulty object through the embedded DifficultyHitObject.
type Object interface {
	comparable
	Base() *DifficultyHitObject
}
