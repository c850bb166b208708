package taiko

import (
	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
)

// IsDon reports whether obj is a don, that is carries neither a whistle nor a clap.
func IsDon(obj objects.IHitObject) bool {
	return !obj.GetBasicData().HasHitSound(objects.Whistle | objects.Clap)
}

func IsKat(obj objects.IHitObject) bool {
	return !IsDon(obj)
}

func IsFinisher(obj objects.IHitObject) bool {
	return obj.GetBasicData().HasHitSound(objects.Finish)
}

// IsMono reports whether obj has the same colour as the object right before it. The first object is never mono.
func IsMono(b *beatmap.Beatmap, obj objects.IHitObject) bool {
	prev := b.Prev(obj, false)
	if prev == nil {
		return false
	}

	return IsDon(prev) == IsDon(obj)
}

// neighbours returns the closest non-concurrent circles around obj, nil where the neighbour is missing or not a circle.
func neighbours(b *beatmap.Beatmap, obj objects.IHitObject) (prev, next *objects.Circle) {
	if p, ok := b.Prev(obj, true).(*objects.Circle); ok {
		prev = p
	}

	if n, ok := b.Next(obj, true).(*objects.Circle); ok {
		next = n
	}

	return
}

// IsAtBeginningOfPattern reports whether a pattern of similarly spaced circles starts at obj.
func IsAtBeginningOfPattern(b *beatmap.Beatmap, obj objects.IHitObject) bool {
	prev, next := neighbours(b, obj)

	if prev == nil {
		return true
	}

	if next == nil {
		return false
	}

	gapBefore := obj.GetStartTime() - prev.StartTime
	gapAfter := next.StartTime - obj.GetStartTime()

	// a tighter snap going forward starts a new pattern
	return gapAfter < gapBefore
}

// IsAtEndOfPattern reports whether a pattern of similarly spaced circles ends at obj.
func IsAtEndOfPattern(b *beatmap.Beatmap, obj objects.IHitObject) bool {
	prev, next := neighbours(b, obj)

	if next == nil {
		return true
	}

	if prev == nil {
		return false
	}

	gapBefore := obj.GetStartTime() - prev.StartTime
	gapAfter := next.StartTime - obj.GetStartTime()

	return gapBefore < gapAfter
}

func IsInMiddleOfPattern(b *beatmap.Beatmap, obj objects.IHitObject) bool {
	return !IsAtBeginningOfPattern(b, obj) && !IsAtEndOfPattern(b, obj)
}

// IsNotInPattern reports whether obj stands alone, beginning and ending its own pattern.
func IsNotInPattern(b *beatmap.Beatmap, obj objects.IHitObject) bool {
	return IsAtBeginningOfPattern(b, obj) && IsAtEndOfPattern(b, obj)
}
