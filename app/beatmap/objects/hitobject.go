package objects

import (
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/timing"
	"github.com/go-gl/mathgl/mgl32"
)

// 131,304,1166,1,0,0:0:0:0:                                        circle
// 319,179,1392,6,0,L|389:160,2,62.5,2|0|0,0:0|0:0|0:0,0:0:0:0:     slider
// 256,192,187300,12,0,188889,1:0:0:0:                              spinner
// 448,192,243437,128,2,247861:0:0:0:0:                             hold note

type Type int

const (
	CircleType    Type = 1
	SliderType    Type = 2
	NewCombo      Type = 4
	SpinnerType   Type = 8
	ComboSkip1    Type = 16
	ComboSkip2    Type = 32
	ComboSkip3    Type = 64
	HoldNoteType  Type = 128
	comboSkipMask      = ComboSkip1 | ComboSkip2 | ComboSkip3
)

type HitSound int

const (
	HitSoundNone HitSound = 0
	Normal       HitSound = 1
	Whistle      HitSound = 2
	Finish       HitSound = 4
	Clap         HitSound = 8
)

// Extras is the trailing sampleset:addition:customIndex:volume:filename group.
type Extras struct {
	Sampleset timing.Sampleset
	Addition  timing.Sampleset

	// CustomIndex and Volume are 0 when the object defers to its timing line
	CustomIndex int
	Volume      int

	Filename string
}

// IHitObject is implemented by *Circle, *Slider, *Spinner and *HoldNote.
type IHitObject interface {
	GetBasicData() *HitObject

	GetStartTime() float64
	GetEndTime() float64
	GetDuration() float64

	GetStartPosition() mgl32.Vec2
	GetEndPosition() mgl32.Vec2

	// GetStackedStartPosition applies the stack offset for the given circle radius
	GetStackedStartPosition(radius float32) mgl32.Vec2
	GetStackedEndPosition(radius float32) mgl32.Vec2

	GetID() int
	IsNewCombo() bool

	// EdgeTimes returns the times of the head, every slider edge and the end of spinners and hold notes
	EdgeTimes() []float64

	sealed()
}

// HitObject holds what every object line shares.
type HitObject struct {
	StartTime float64
	Position  mgl32.Vec2
	Type      Type
	HitSound  HitSound
	Extras    Extras

	// Code is the raw line the object was parsed from
	Code string

	id int
}

func (h *HitObject) GetBasicData() *HitObject { return h }

func (h *HitObject) GetStartTime() float64 { return h.StartTime }

func (h *HitObject) GetStartPosition() mgl32.Vec2 { return h.Position }

func (h *HitObject) GetID() int { return h.id }

// SetID stores the index of the object within its beatmap.
func (h *HitObject) SetID(id int) { h.id = id }

func (h *HitObject) IsNewCombo() bool { return h.Type&NewCombo != 0 }

// ComboSkip returns how many combo colours a new combo skips.
func (h *HitObject) ComboSkip() int {
	return int(h.Type&comboSkipMask) >> 4
}

func (h *HitObject) HasType(t Type) bool { return h.Type&t != 0 }

// HasHitSound reports whether any of the given hit sounds is set, or any hit sound at all for HitSoundNone.
func (h *HitObject) HasHitSound(sound HitSound) bool {
	if sound == HitSoundNone {
		return h.HitSound > 0
	}

	return h.HitSound&sound != 0
}

func (h *HitObject) sealed() {}

// Stacking is the state ApplyStacking writes on circles and sliders.
type Stacking struct {
	StackIndex int
	IsOnSlider bool
}

func (s *Stacking) GetStacking() *Stacking { return s }

// Offset returns the stack displacement along both axes.
func (s *Stacking) Offset(radius float32) float32 {
	return float32(s.StackIndex) * radius * -0.1
}

func (s *Stacking) apply(position mgl32.Vec2, radius float32) mgl32.Vec2 {
	offset := s.Offset(radius)
	return position.Add(mgl32.Vec2{offset, offset})
}

// Stackable is implemented by *Circle and *Slider.
type Stackable interface {
	IHitObject
	GetStacking() *Stacking
}
