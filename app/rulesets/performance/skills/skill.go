package skills

import (
	"sort"

	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/preprocessing"
)

// DecayWeight is the weight ratio between consecutive sorted section peaks.
const DecayWeight = 0.9

// Skill accumulates difficulty over objects fed in time order. A Skill serves a single calculation.
type Skill[T preprocessing.Object] interface {
	Kind() Kind
	Process(current T)

	// DifficultyValue aggregates everything processed so far, it may be queried at any time
	DifficultyValue() float64
}

// StrainSkill is a Skill that records the highest strain of every section of the map.
type StrainSkill[T preprocessing.Object] interface {
	Skill[T]
	SaveCurrentPeak()
	StartNewSectionFrom(time float64, current T)
	CurrentStrainPeaks() []float64

	// Finalize saves the last section peak, no objects may be processed afterwards
	Finalize()
}

type state int

const (
	idle state = iota
	processing
	finalized
)

// Strain tracks section peaks. Concrete skills embed it and plug StrainValueAt and CalculateInitialStrain.
type Strain[T preprocessing.Object] struct {
	kind Kind

	StrainValueAt          func(current T) float64
	CalculateInitialStrain func(time float64, current T) float64

	currentSectionPeak float64
	strainPeaks        []float64

	state state
}

func NewStrain[T preprocessing.Object](kind Kind) *Strain[T] {
	return &Strain[T]{kind: kind}
}

func (s *Strain[T]) Kind() Kind {
	return s.kind
}

func (s *Strain[T]) Process(current T) {
	if s.state == finalized {
		panic("skills: " + s.kind.String() + " processed after Finalize")
	}

	s.state = processing
	s.currentSectionPeak = max(s.StrainValueAt(current), s.currentSectionPeak)
}

func (s *Strain[T]) SaveCurrentPeak() {
	s.strainPeaks = append(s.strainPeaks, s.currentSectionPeak)
}

func (s *Strain[T]) StartNewSectionFrom(time float64, current T) {
	s.currentSectionPeak = s.CalculateInitialStrain(time, current)
}

// CurrentStrainPeaks returns the saved peaks plus the peak of the open section.
func (s *Strain[T]) CurrentStrainPeaks() []float64 {
	peaks := make([]float64, len(s.strainPeaks), len(s.strainPeaks)+1)
	copy(peaks, s.strainPeaks)

	if s.state != finalized {
		peaks = append(peaks, s.currentSectionPeak)
	}

	return peaks
}

func (s *Strain[T]) Finalize() {
	if s.state == finalized {
		return
	}

	s.SaveCurrentPeak()
	s.state = finalized
}

func (s *Strain[T]) DifficultyValue() float64 {
	return WeightedSum(s.CurrentStrainPeaks())
}

// WeightedSum sorts peaks from highest to lowest and sums them with weights DecayWeight^i.
func WeightedSum(peaks []float64) float64 {
	sorted := make([]float64, len(peaks))
	copy(sorted, peaks)

	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	difficulty := 0.0
	weight := 1.0

	for _, strain := range sorted {
		difficulty += strain * weight
		weight *= DecayWeight
	}

	return difficulty
}
