package rulesets

import (
	"context"
	"errors"
	"fmt"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/osu/performance/standard"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/api"
	taiko "github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko/performance"
)

var ErrUnsupportedMode = errors.New("no difficulty calculator for mode")

var calculators = map[beatmap.Mode]func(opts performance.Options) api.IDifficultyCalculator{
	beatmap.Standard: func(opts performance.Options) api.IDifficultyCalculator {
		return &standard.DifficultyCalculator{Options: opts}
	},
	beatmap.Taiko: func(opts performance.Options) api.IDifficultyCalculator {
		return &taiko.DifficultyCalculator{Options: opts}
	},
}

// GetCalculator returns a fresh calculator for mode with the default engine options.
func GetCalculator(mode beatmap.Mode) (api.IDifficultyCalculator, error) {
	return NewCalculator(mode, performance.DefaultOptions())
}

func NewCalculator(mode beatmap.Mode, opts performance.Options) (api.IDifficultyCalculator, error) {
	newCalculator, ok := calculators[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}

	return newCalculator(opts), nil
}

// Calculate rates b with the calculator of its mode.
func Calculate(ctx context.Context, b *beatmap.Beatmap) (api.Attributes, error) {
	calc, err := GetCalculator(b.Mode)
	if err != nil {
		return api.Attributes{}, err
	}

	return calc.CalculateSingle(ctx, b)
}

// Supported reports whether mode has a difficulty calculator.
func Supported(mode beatmap.Mode) bool {
	_, ok := calculators[mode]
	return ok
}
