package catch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
)

type MovementType int

const (
	Walk MovementType = iota
	Dash
	Hyperdash
)

func (m MovementType) String() string {
	switch m {
	case Dash:
		return "Dash"
	case Hyperdash:
		return "Hyperdash"
	}

	return "Walk"
}

// NoteDirection is the direction the catcher has to move to reach the target.
type NoteDirection int

const (
	None NoteDirection = iota
	Left
	Right
)

func (d NoteDirection) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}

	return "None"
}

// ParseMovementType matches a movement name regardless of case.
func ParseMovementType(name string) (MovementType, error) {
	for _, m := range []MovementType{Walk, Dash, Hyperdash} {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown movement type %q", name)
}

type Kind int

const (
	Fruit Kind = iota
	Head
	Repeat
	Tail
	Droplet
	Banana
)

var kindNames = [...]string{"Fruit", "Slider head", "Slider repeat", "Slider tail", "Droplet", "Spinner"}

func (k Kind) String() string {
	return kindNames[k]
}

// Object is one catchable element: a fruit, a juice stream head or part, or a banana shower.
type Object struct {
	Kind Kind
	Time float64
	X    float32

	Original objects.IHitObject

	// Parts holds repeats, the tail and droplets of a juice stream head, ordered by time
	Parts []*Object

	// Head links a part back to its juice stream
	Head *Object

	Target        *Object
	MovementType  MovementType
	NoteDirection NoteDirection

	// DistanceToHyper is the margin left before a hyperdash is needed, negative when one is
	DistanceToHyper float64

	// DistanceToDash is the margin left before walking is too slow, negative when a dash is needed
	DistanceToDash float64

	// TimeToTarget is the time to the target minus the quarter frame grace
	TimeToTarget float64
}

func (o *Object) IsHyperdash() bool { return o.MovementType == Hyperdash }

func (o *Object) IsDash() bool { return o.MovementType == Dash }

func (o *Object) IsSlider() bool { return o.Kind >= Head && o.Kind <= Droplet }

// Generate converts the beatmap's objects into catch objects ordered by time. Juice stream parts
// hang off their head, see Flatten.
func Generate(b *beatmap.Beatmap) []*Object {
	out := make([]*Object, 0, len(b.HitObjects))

	for _, obj := range b.HitObjects {
		switch o := obj.(type) {
		case *objects.Circle:
			out = append(out, &Object{Kind: Fruit, Time: o.StartTime, X: o.Position.X(), Original: o})
		case *objects.Spinner:
			out = append(out, &Object{Kind: Banana, Time: o.StartTime, X: o.Position.X(), Original: o})
		case *objects.Slider:
			out = append(out, juiceStream(o))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})

	return out
}

func juiceStream(s *objects.Slider) *Object {
	head := &Object{Kind: Head, Time: s.StartTime, X: s.Position.X(), Original: s}

	part := func(kind Kind, time float64) *Object {
		return &Object{Kind: kind, Time: time, X: s.GetPositionAt(time).X(), Original: s, Head: head}
	}

	edges := s.EdgeTimes()[1:]
	for i, time := range edges {
		kind := Repeat
		if i == len(edges)-1 {
			kind = Tail
		}

		head.Parts = append(head.Parts, part(kind, time))
	}

	for _, time := range s.TickTimes() {
		head.Parts = append(head.Parts, part(Droplet, time))
	}

	sort.SliceStable(head.Parts, func(i, j int) bool {
		return head.Parts[i].Time < head.Parts[j].Time
	})

	return head
}

// Flatten lists every object followed by its juice stream parts.
func Flatten(objs []*Object) []*Object {
	out := make([]*Object, 0, len(objs))

	for _, o := range objs {
		out = append(out, o)
		out = append(out, o.Parts...)
	}

	return out
}

// New generates the catch objects of b and classifies their movement.
func New(b *beatmap.Beatmap) []*Object {
	objs := Generate(b)
	CalculateDistances(objs, b.Difficulty.CircleSize)

	return objs
}
