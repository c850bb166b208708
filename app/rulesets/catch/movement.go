package catch

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/framework/math/mutils"
)

const (
	// allowedCatchRange is the part of the catcher that can receive fruit, catchMargin in stable
	allowedCatchRange = 0.8
	baseSize          = 106.75
	baseDashSpeed     = 1.0
	baseWalkSpeed     = 0.5

	// quarterFrameGrace is a quarter of a 60fps frame
	quarterFrameGrace = 1000.0 / 60.0 / 4
)

func catcherScale(cs float64) float32 {
	return float32(1-0.7*(cs-5)/5) / 2 * 2
}

// CatcherWidth returns the width of the catching area for a circle size.
func CatcherWidth(cs float64) float64 {
	return float64(baseSize * float32(math.Abs(float64(catcherScale(cs)))) * allowedCatchRange)
}

// CalculateDistances walks objs and their juice stream parts in order and records, for each
// element, what it takes to reach the next one. The last element keeps no target.
func CalculateDistances(objs []*Object, cs float64) {
	all := Flatten(objs)
	if len(all) < 2 {
		return
	}

	halfCatcherWidth := CatcherWidth(cs) * 0.5 / allowedCatchRange

	lastDirection := None
	dashRange := halfCatcherWidth

	for i := 0; i < len(all)-1; i++ {
		current, next := all[i], all[i+1]

		current.Target = next
		current.TimeToTarget = next.Time - current.Time - quarterFrameGrace

		// banana showers reset the catcher, hyperdashes out of them are not supported
		if current.Kind == Banana || next.Kind == Banana {
			current.MovementType = Walk
			current.NoteDirection = None
			current.DistanceToHyper = math.Inf(1)
			current.DistanceToDash = math.Inf(1)

			dashRange = halfCatcherWidth
			lastDirection = None

			continue
		}

		direction := Right
		if next.X > current.X {
			direction = Left
		}

		distance := math.Abs(float64(next.X - current.X))

		margin := halfCatcherWidth
		if lastDirection == direction {
			margin = dashRange
		}

		current.DistanceToHyper = current.TimeToTarget*baseDashSpeed - (distance - margin)
		current.DistanceToDash = current.TimeToTarget*baseWalkSpeed - (distance - halfCatcherWidth)

		switch {
		case current.DistanceToHyper < 0:
			current.MovementType = Hyperdash
			dashRange = halfCatcherWidth
		default:
			if current.DistanceToDash < 0 {
				current.MovementType = Dash
			} else {
				current.MovementType = Walk
			}

			dashRange = mutils.Clamp(current.DistanceToHyper, 0, halfCatcherWidth)
		}

		current.NoteDirection = direction
		lastDirection = direction
	}
}
