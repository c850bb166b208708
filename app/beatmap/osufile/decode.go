package osufile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/fields"
)

const (
	header = "osu file format v"

	// maxLine fits the longest slider lines found in ranked maps
	maxLine = 1024 * 1024
)

type section int

const (
	secNone section = iota
	secGeneral
	secMetadata
	secDifficulty
	secTimingPoints
	secHitObjects
)

var sections = map[string]section{
	"[general]":      secGeneral,
	"[metadata]":     secMetadata,
	"[difficulty]":   secDifficulty,
	"[timingpoints]": secTimingPoints,
	"[hitobjects]":   secHitObjects,
}

// File is an .osu file split into key/value sections and comma separated lines. Values are not interpreted.
type File struct {
	Version int

	General    map[string]string
	Metadata   map[string]string
	Difficulty map[string]string

	TimingPoints [][]string
	HitObjects   [][]string
}

// Decode tokenizes an .osu file. Sections the difficulty model doesn't read are skipped.
func Decode(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	f := &File{
		General:    make(map[string]string),
		Metadata:   make(map[string]string),
		Difficulty: make(map[string]string),
	}

	version, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	f.Version = version

	sec := secNone

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sec = sections[strings.ToLower(line)]
			continue
		}

		switch sec {
		case secGeneral:
			putKeyValue(f.General, line)
		case secMetadata:
			putKeyValue(f.Metadata, line)
		case secDifficulty:
			putKeyValue(f.Difficulty, line)
		case secTimingPoints:
			f.TimingPoints = append(f.TimingPoints, splitCSV(line))
		case secHitObjects:
			f.HitObjects = append(f.HitObjects, splitCSV(line))
		}
	}

	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read .osu: %w", err)
	}

	return f, nil
}

func readHeader(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line == "" {
			continue
		}

		if !strings.HasPrefix(strings.ToLower(line), header) {
			return 0, fields.Invalid("header", line, "not an .osu file")
		}

		version, err := strconv.Atoi(strings.TrimSpace(line[len(header):]))
		if err != nil {
			return 0, fields.Invalid("header", line, "bad format version")
		}

		return version, nil
	}

	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read .osu: %w", err)
	}

	return 0, fields.Invalid("header", "", "empty file")
}

func putKeyValue(dst map[string]string, line string) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}

	dst[strings.TrimSpace(key)] = strings.TrimSpace(value)
}

func splitCSV(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
