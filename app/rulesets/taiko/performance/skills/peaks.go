package skills

import (
	strain "github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/beatmap-difficulty/framework/math/mutils"
)

const (
	finalMultiplier float64 = 0.0625

	rhythmPeakMultiplier  = 0.2 * finalMultiplier
	colourPeakMultiplier  = 0.375 * finalMultiplier
	staminaPeakMultiplier = 0.375 * finalMultiplier
)

// Peaks combines colour, rhythm and stamina section by section. Section bookkeeping is forwarded to the three children.
type Peaks struct {
	Colour  *ColourSkill
	Rhythm  *RhythmSkill
	Stamina *StaminaSkill
}

func NewPeaks() *Peaks {
	return &Peaks{
		Colour:  NewColourSkill(),
		Rhythm:  NewRhythmSkill(),
		Stamina: NewStaminaSkill(),
	}
}

func (p *Peaks) children() []strain.StrainSkill[*preprocessing.DifficultyObject] {
	return []strain.StrainSkill[*preprocessing.DifficultyObject]{p.Rhythm, p.Colour, p.Stamina}
}

func (p *Peaks) Kind() strain.Kind {
	return strain.Peaks
}

func (p *Peaks) Process(current *preprocessing.DifficultyObject) {
	for _, child := range p.children() {
		child.Process(current)
	}
}

func (p *Peaks) SaveCurrentPeak() {
	for _, child := range p.children() {
		child.SaveCurrentPeak()
	}
}

func (p *Peaks) StartNewSectionFrom(time float64, current *preprocessing.DifficultyObject) {
	for _, child := range p.children() {
		child.StartNewSectionFrom(time, current)
	}
}

func (p *Peaks) Finalize() {
	for _, child := range p.children() {
		child.Finalize()
	}
}

func (p *Peaks) ColourDifficultyValue() float64 {
	return p.Colour.DifficultyValue() * colourPeakMultiplier
}

func (p *Peaks) RhythmDifficultyValue() float64 {
	return p.Rhythm.DifficultyValue() * rhythmPeakMultiplier
}

func (p *Peaks) StaminaDifficultyValue() float64 {
	return p.Stamina.DifficultyValue() * staminaPeakMultiplier
}

// CurrentStrainPeaks returns the combined peak of every section, zero sections included.
func (p *Peaks) CurrentStrainPeaks() []float64 {
	colourPeaks := p.Colour.CurrentStrainPeaks()
	rhythmPeaks := p.Rhythm.CurrentStrainPeaks()
	staminaPeaks := p.Stamina.CurrentStrainPeaks()

	peaks := make([]float64, len(colourPeaks))

	for i := range colourPeaks {
		peak := mutils.Norm(1.5, colourPeaks[i]*colourPeakMultiplier, staminaPeaks[i]*staminaPeakMultiplier)
		peaks[i] = mutils.Norm(2, peak, rhythmPeaks[i]*rhythmPeakMultiplier)
	}

	return peaks
}

// DifficultyValue is the weighted sum of the combined peaks. Sections without strain do not contribute.
func (p *Peaks) DifficultyValue() float64 {
	combined := p.CurrentStrainPeaks()

	peaks := combined[:0]
	for _, peak := range combined {
		if peak > 0 {
			peaks = append(peaks, peak)
		}
	}

	return strain.WeightedSum(peaks)
}
