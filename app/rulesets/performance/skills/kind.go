package skills

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies a skill. Two skills of the same Kind are interchangeable for keying results.
type Kind int

const (
	Aim Kind = iota
	Speed
	Colour
	Rhythm
	Stamina
	Peaks
)

var kindNames = [...]string{"aim", "speed", "colour", "rhythm", "stamina", "peaks"}

func (k Kind) String() string {
	if k < Aim || k > Peaks {
		return "unknown"
	}

	return kindNames[k]
}

// DisplayName is the human readable name, never used for identity.
func (k Kind) DisplayName() string {
	return cases.Title(language.English).String(k.String())
}
