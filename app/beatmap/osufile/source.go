package osufile

import (
	"strconv"
	"strings"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
)

// DefaultStackLeniency applies when [General] has no StackLeniency.
const DefaultStackLeniency = 0.7

// ParseMode accepts the numeric .osu mode or a mode name.
func ParseMode(value string) (beatmap.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "osu", "standard":
		return beatmap.Standard, nil
	case "1", "taiko":
		return beatmap.Taiko, nil
	case "2", "fruits", "catch":
		return beatmap.Catch, nil
	case "3", "mania":
		return beatmap.Mania, nil
	}

	return 0, fields.Invalid("Mode", value, "unknown mode")
}

// Source converts the tokenized file into the field arrays the beatmap model is built from.
func (f *File) Source() (beatmap.Source, error) {
	mode, err := ParseMode(f.General["Mode"])
	if err != nil {
		return beatmap.Source{}, fields.At(err, "General", -1)
	}

	stackLeniency := DefaultStackLeniency

	if raw, ok := f.General["StackLeniency"]; ok {
		if stackLeniency, err = strconv.ParseFloat(raw, 64); err != nil {
			return beatmap.Source{}, fields.At(fields.Invalid("StackLeniency", raw, "not a number"), "General", -1)
		}
	}

	return beatmap.Source{
		Mode:          mode,
		StackLeniency: stackLeniency,
		Difficulty:    f.Difficulty,
		TimingLines:   f.TimingPoints,
		HitObjects:    f.HitObjects,
	}, nil
}
