package main

import (
	"strconv"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/objects"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/taiko"
	"github.com/Givikap120/beatmap-difficulty/app/settings"
	"github.com/spf13/cobra"
)

type taikoRow struct {
	Time     float64 `json:"time"`
	Colour   string  `json:"colour"`
	Finisher bool    `json:"finisher"`
	Pattern  string  `json:"pattern"`
}

func patternPosition(b *beatmap.Beatmap, obj objects.IHitObject) string {
	switch {
	case taiko.IsNotInPattern(b, obj):
		return "single"
	case taiko.IsAtBeginningOfPattern(b, obj):
		return "start"
	case taiko.IsAtEndOfPattern(b, obj):
		return "end"
	}

	return "middle"
}

func taikoRows(b *beatmap.Beatmap) []taikoRow {
	var rows []taikoRow

	for _, obj := range b.HitObjects {
		if _, ok := obj.(*objects.Circle); !ok {
			continue
		}

		colour := "kat"
		if taiko.IsDon(obj) {
			colour = "don"
		}

		rows = append(rows, taikoRow{
			Time:     obj.GetStartTime(),
			Colour:   colour,
			Finisher: taiko.IsFinisher(obj),
			Pattern:  patternPosition(b, obj),
		})
	}

	return rows
}

func newTaikoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "taiko <file>",
		Short: "Print the colour and pattern position of every note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadBeatmap(args[0])
			if err != nil {
				return err
			}

			rows := taikoRows(b)

			if a.cfg.Output == settings.OutputJSON {
				return writeJSON(a.out, rows)
			}

			table := newTable(a.out, "Time", "Colour", "Finisher", "Pattern")

			for _, r := range rows {
				table.Append([]string{strconv.FormatFloat(r.Time, 'f', 0, 64), r.Colour, strconv.FormatBool(r.Finisher), r.Pattern})
			}

			table.Render()

			return nil
		},
	}
}
