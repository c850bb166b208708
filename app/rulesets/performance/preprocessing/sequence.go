package preprocessing

import "github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"

// Sequence is the ordered, read-only list of difficulty objects of one calculation.
type Sequence[T Object] struct {
	items []T
}

// Build creates one difficulty object per hit object from index start onward. create receives the sequence being
// built so objects can look back at the ones already created.
func Build[T Object](hitObjects []objects.IHitObject, start int, create func(seq *Sequence[T], index int, hitObjects []objects.IHitObject, i int) T) *Sequence[T] {
	seq := &Sequence[T]{}

	if start < 1 {
		start = 1
	}

	if len(hitObjects) > start {
		seq.items = make([]T, 0, len(hitObjects)-start)
	}

	for i := start; i < len(hitObjects); i++ {
		seq.items = append(seq.items, create(seq, len(seq.items), hitObjects, i))
	}

	return seq
}

// NewSequence wraps a copy of items.
func NewSequence[T Object](items []T) *Sequence[T] {
	seq := &Sequence[T]{items: make([]T, len(items))}
	copy(seq.items, items)

	return seq
}

func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// At returns the object at index, the zero value outside the sequence.
func (s *Sequence[T]) At(index int) (zero T) {
	if s == nil || index < 0 || index >= len(s.items) {
		return
	}

	return s.items[index]
}

// Previous returns the object backwardsIndex+1 places before index.
func (s *Sequence[T]) Previous(index, backwardsIndex int) T {
	return s.At(index - (backwardsIndex + 1))
}

// Next returns the object forwardsIndex+1 places after index.
func (s *Sequence[T]) Next(index, forwardsIndex int) T {
	return s.At(index + forwardsIndex + 1)
}

// Items returns a copy of the objects in order.
func (s *Sequence[T]) Items() []T {
	if s == nil {
		return nil
	}

	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
