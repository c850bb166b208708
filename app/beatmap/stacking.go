package beatmap

import "github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"

const stackDistanceSq = 3 * 3

// StackThreshold is how far apart in time two heads can be and still stack.
func (b *Beatmap) StackThreshold() float64 {
	return b.Difficulty.FadeIn() * b.StackLeniency * 0.1
}

// applyStacking repeats until a full pass changes nothing. Earlier objects move up-left, circles under
// slider tails move down-right.
func (b *Beatmap) applyStacking() {
	var stackables []objects.Stackable

	for _, obj := range b.HitObjects {
		if s, ok := obj.(objects.Stackable); ok {
			stackables = append(stackables, s)
		}
	}

	for changed := true; changed; {
		changed = false

		for i := 0; i < len(stackables)-1; i++ {
			for j := i + 1; j < len(stackables); j++ {
				hitObject, other := stackables[i], stackables[j]

				if !b.meetsStackTime(hitObject, other) {
					break
				}

				hit, next := hitObject.GetStacking(), other.GetStacking()

				if isCircle(hitObject) || isCircle(other) {
					if b.shouldStack(hitObject, other) {
						if isSlider(other) || next.IsOnSlider {
							hit.IsOnSlider = true
						}

						// sliders never go below 0, circles do under slider tails and keep stacking downwards
						if hit.StackIndex < 0 && !hit.IsOnSlider {
							next.StackIndex = hit.StackIndex - 1
						} else {
							hit.StackIndex = next.StackIndex + 1
						}

						changed = true

						break
					}

					if b.isStacked(hitObject, other) {
						break
					}
				}

				slider, ok := hitObject.(*objects.Slider)
				if !ok {
					continue
				}

				if b.shouldStackTail(slider, other) {
					// a later slider moves the earlier one up, a circle moves down
					if isSlider(other) || next.IsOnSlider {
						hit.IsOnSlider = true
						hit.StackIndex = next.StackIndex + 1
					} else {
						next.StackIndex = hit.StackIndex - 1
					}

					changed = true

					break
				}

				if b.isStackedTail(slider, other) {
					break
				}
			}
		}
	}
}

func isCircle(obj objects.IHitObject) bool {
	_, ok := obj.(*objects.Circle)
	return ok
}

func isSlider(obj objects.IHitObject) bool {
	_, ok := obj.(*objects.Slider)
	return ok
}

func (b *Beatmap) meetsStackTime(obj, other objects.Stackable) bool {
	return other.GetStartTime()-obj.GetStartTime() <= b.StackThreshold()
}

func (b *Beatmap) canStack(obj, other objects.Stackable) bool {
	d := obj.GetStartPosition().Sub(other.GetStartPosition())
	return b.meetsStackTime(obj, other) && d.Dot(d) < stackDistanceSq
}

func (b *Beatmap) isStacked(obj, other objects.Stackable) bool {
	return b.canStack(obj, other) && obj.GetStacking().StackIndex == other.GetStacking().StackIndex+1
}

func (b *Beatmap) shouldStack(obj, other objects.Stackable) bool {
	return b.canStack(obj, other) && !b.isStacked(obj, other)
}

func (b *Beatmap) canStackTail(slider *objects.Slider, other objects.Stackable) bool {
	tail := slider.GetEndPosition()
	d := other.GetStartPosition().Sub(tail)

	return b.meetsStackTime(slider, other) && d.Dot(d) < stackDistanceSq && slider.StartTime < other.GetStartTime()
}

func (b *Beatmap) isStackedTail(slider *objects.Slider, other objects.Stackable) bool {
	return b.canStackTail(slider, other) && slider.StackIndex == other.GetStacking().StackIndex+1
}

func (b *Beatmap) shouldStackTail(slider *objects.Slider, other objects.Stackable) bool {
	return b.canStackTail(slider, other) && !b.isStackedTail(slider, other)
}
