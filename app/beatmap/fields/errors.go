package fields

import (
	"errors"
	"fmt"
)

// ErrInvalidBeatmapData marks input that cannot produce a valid model: a malformed
// number, a non-positive beat length or a missing required field.
var ErrInvalidBeatmapData = errors.New("invalid beatmap data")

// InvalidDataError describes which field of which line could not be used.
type InvalidDataError struct {
	// Section is the logical group the line belongs to, e.g. "TimingPoints"
	Section string

	// Line is the 0-based index of the line within its section, -1 when unknown
	Line int

	// Field names the offending value
	Field string

	// Value is the raw text, empty for missing fields
	Value string

	Reason string

	Err error
}

func (e *InvalidDataError) Error() string {
	msg := "invalid beatmap data"

	if e.Section != "" {
		if e.Line >= 0 {
			msg += fmt.Sprintf(" in %s line %d", e.Section, e.Line)
		} else {
			msg += " in " + e.Section
		}
	}

	if e.Field != "" {
		msg += fmt.Sprintf(": %s=%q", e.Field, e.Value)
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *InvalidDataError) Unwrap() error {
	return e.Err
}

func (e *InvalidDataError) Is(target error) bool {
	return target == ErrInvalidBeatmapData
}

// Invalid builds an InvalidDataError for a single field.
func Invalid(field, value, reason string) *InvalidDataError {
	return &InvalidDataError{Line: -1, Field: field, Value: value, Reason: reason}
}

// At attaches section and line information to an error coming from a line parser.
// Errors that are not InvalidDataError are wrapped into one.
func At(err error, section string, line int) error {
	if err == nil {
		return nil
	}

	var invalid *InvalidDataError
	if errors.As(err, &invalid) {
		cp := *invalid
		cp.Section = section
		cp.Line = line

		return &cp
	}

	return &InvalidDataError{Section: section, Line: line, Err: err}
}
