package fields

import (
	"math"
	"strconv"
	"strings"
)

// Float parses args[index] as an invariant-culture float64.
func Float(args []string, index int, name string) (float64, error) {
	if index >= len(args) {
		return 0, Invalid(name, "", "missing field")
	}

	return ParseFloat(args[index], name)
}

// ParseFloat parses a single value. Only plain decimal text with '.' as the separator is accepted,
// hex floats and inf/nan spellings are rejected along with non-finite results.
func ParseFloat(value, name string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if strings.IndexFunc(trimmed, notDecimal) >= 0 {
		return 0, Invalid(name, value, "not an invariant decimal number")
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &InvalidDataError{Line: -1, Field: name, Value: value, Err: err}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Invalid(name, value, "not a finite number")
	}

	return v, nil
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}

// Float32 parses args[index] and narrows it to float32, as positions and pixel lengths are stored.
func Float32(args []string, index int, name string) (float32, error) {
	v, err := Float(args, index, name)
	return float32(v), err
}

// Int parses args[index] as a base-10 integer.
func Int(args []string, index int, name string) (int, error) {
	if index >= len(args) {
		return 0, Invalid(name, "", "missing field")
	}

	return ParseInt(args[index], name)
}

func ParseInt(value, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &InvalidDataError{Line: -1, Field: name, Value: value, Err: err}
	}

	return v, nil
}

// OptionalInt parses args[index] when present, otherwise returns def.
func OptionalInt(args []string, index int, name string, def int) (int, error) {
	if index >= len(args) || strings.TrimSpace(args[index]) == "" {
		return def, nil
	}

	return ParseInt(args[index], name)
}

// OptionalFloat parses args[index] when present, otherwise returns def.
func OptionalFloat(args []string, index int, name string, def float64) (float64, error) {
	if index >= len(args) || strings.TrimSpace(args[index]) == "" {
		return def, nil
	}

	return ParseFloat(args[index], name)
}

// Sub splits a delimited sub-group such as "1:0:0:0:" or "L|100:100".
func Sub(field string, sep string) []string {
	return strings.Split(field, sep)
}
