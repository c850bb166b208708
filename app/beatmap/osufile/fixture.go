package osufile

import (
	"fmt"
	"io"
	"strings"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"gopkg.in/yaml.v3"
)

// Fixture is a hand-written beatmap: the few sections the model needs, one string per line.
type Fixture struct {
	Title         string            `yaml:"title"`
	Mode          string            `yaml:"mode"`
	StackLeniency *float64          `yaml:"stackLeniency"`
	Difficulty    map[string]string `yaml:"difficulty"`
	TimingPoints  []string          `yaml:"timingPoints"`
	HitObjects    []string          `yaml:"hitObjects"`
}

// DecodeFixture reads a YAML fixture into the same shape Decode produces.
func DecodeFixture(r io.Reader) (*File, error) {
	var fx Fixture

	if err := yaml.NewDecoder(r).Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	f := &File{
		General:    map[string]string{},
		Metadata:   map[string]string{},
		Difficulty: fx.Difficulty,
	}

	if f.Difficulty == nil {
		f.Difficulty = map[string]string{}
	}

	if fx.Mode != "" {
		f.General["Mode"] = fx.Mode
	}

	if fx.StackLeniency != nil {
		f.General["StackLeniency"] = fmt.Sprint(*fx.StackLeniency)
	}

	if fx.Title != "" {
		f.Metadata["Title"] = fx.Title
	}

	for _, line := range fx.TimingPoints {
		f.TimingPoints = append(f.TimingPoints, splitCSV(line))
	}

	for _, line := range fx.HitObjects {
		f.HitObjects = append(f.HitObjects, splitCSV(line))
	}

	return f, nil
}

// Beatmap builds the model described by f.
func (f *File) Beatmap() (*beatmap.Beatmap, error) {
	src, err := f.Source()
	if err != nil {
		return nil, err
	}

	return beatmap.New(src)
}

// Name is "Artist - Title [Version]" with whatever parts the metadata has.
func (f *File) Name() string {
	var sb strings.Builder

	if artist := f.Metadata["Artist"]; artist != "" {
		sb.WriteString(artist)
		sb.WriteString(" - ")
	}

	sb.WriteString(f.Metadata["Title"])

	if version := f.Metadata["Version"]; version != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString("[" + version + "]")
	}

	return sb.String()
}
