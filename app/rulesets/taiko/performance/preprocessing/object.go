package preprocessing

import (
	"math"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	base "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/preprocessing"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing/colour"
)

// Rhythm is a ratio between the current and the previous interval.
type Rhythm struct {
	Numerator   int
	Denominator int
	Difficulty  float64
}

func (r *Rhythm) Ratio() float64 {
	return float64(r.Numerator) / float64(r.Denominator)
}

var commonRhythms = []*Rhythm{
	{1, 1, 0.0},
	{2, 1, 0.3},
	{1, 2, 0.5},
	{3, 1, 0.3},
	{1, 3, 0.35},
	{3, 2, 0.6}, // purposefully higher, requires a hand switch when fully alternating
	{2, 3, 0.4},
	{5, 4, 0.5},
	{4, 5, 0.7},
}

type DifficultyObject struct {
	base.DifficultyHitObject

	diffObjects *base.Sequence[*DifficultyObject]

	// mono holds the notes of this object's colour, nil for non-circles
	mono      *base.Sequence[*DifficultyObject]
	MonoIndex int

	notes     *base.Sequence[*DifficultyObject]
	NoteIndex int

	IsCircle bool
	Rhythm   *Rhythm
	Colour   colour.Data
}

func (o *DifficultyObject) IsDon() bool {
	return o.IsCircle && taiko.IsDon(o.BaseObject)
}

func (o *DifficultyObject) Previous(backwardsIndex int) *DifficultyObject {
	return o.diffObjects.Previous(o.Index, backwardsIndex)
}

func (o *DifficultyObject) Next(forwardsIndex int) *DifficultyObject {
	return o.diffObjects.Next(o.Index, forwardsIndex)
}

// PreviousMono steps back through notes of the same colour.
func (o *DifficultyObject) PreviousMono(backwardsIndex int) *DifficultyObject {
	return o.mono.Previous(o.MonoIndex, backwardsIndex)
}

func (o *DifficultyObject) NextMono(forwardsIndex int) *DifficultyObject {
	return o.mono.Next(o.MonoIndex, forwardsIndex)
}

func (o *DifficultyObject) PreviousNote(backwardsIndex int) *DifficultyObject {
	if !o.IsCircle {
		return nil
	}

	return o.notes.Previous(o.NoteIndex, backwardsIndex)
}

func (o *DifficultyObject) NextNote(forwardsIndex int) *DifficultyObject {
	if !o.IsCircle {
		return nil
	}

	return o.notes.Next(o.NoteIndex, forwardsIndex)
}

func closestRhythm(deltaTime float64, lastObject, lastLastObject objects.IHitObject) *Rhythm {
	ratio := deltaTime / (lastObject.GetStartTime() - lastLastObject.GetStartTime())

	closest := commonRhythms[0]
	for _, r := range commonRhythms[1:] {
		if math.Abs(r.Ratio()-ratio) < math.Abs(closest.Ratio()-ratio) {
			closest = r
		}
	}

	return closest
}

// CreateDifficultyObjects wraps every hit object from the third one onward, then encodes colour patterns over the notes.
func CreateDifficultyObjects(b *beatmap.Beatmap) *base.Sequence[*DifficultyObject] {
	seq := base.Build(b.HitObjects, 2, func(seq *base.Sequence[*DifficultyObject], index int, hitObjects []objects.IHitObject, i int) *DifficultyObject {
		obj := &DifficultyObject{
			DifficultyHitObject: base.NewDifficultyHitObject(index, hitObjects[i], hitObjects[i-1]),
			diffObjects:         seq,
		}

		_, obj.IsCircle = hitObjects[i].(*objects.Circle)
		obj.Rhythm = closestRhythm(obj.DeltaTime, hitObjects[i-1], hitObjects[i-2])

		return obj
	})

	var centre, rim, notes []*DifficultyObject

	for _, obj := range seq.Items() {
		if !obj.IsCircle {
			continue
		}

		if obj.IsDon() {
			obj.MonoIndex = len(centre)
			centre = append(centre, obj)
		} else {
			obj.MonoIndex = len(rim)
			rim = append(rim, obj)
		}

		obj.NoteIndex = len(notes)
		notes = append(notes, obj)
	}

	centreSeq, rimSeq, noteSeq := base.NewSequence(centre), base.NewSequence(rim), base.NewSequence(notes)

	encoded := make([]colour.Note, 0, len(notes))

	for _, obj := range notes {
		obj.notes = noteSeq

		if obj.IsDon() {
			obj.mono = centreSeq
		} else {
			obj.mono = rimSeq
		}

		encoded = append(encoded, obj)
	}

	data := colour.Assign(colour.Encode(encoded))

	for _, obj := range notes {
		obj.Colour = data[obj]
	}

	return seq
}
