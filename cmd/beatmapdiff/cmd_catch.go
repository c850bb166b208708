package main

import (
	"strconv"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/catch"
	"github.com/Givikap120/beatmap-difficulty/app/settings"
	"github.com/spf13/cobra"
)

type catchRow struct {
	Time            float64 `json:"time"`
	Kind            string  `json:"kind"`
	X               float32 `json:"x"`
	Movement        string  `json:"movement"`
	Direction       string  `json:"direction"`
	DistanceToHyper float64 `json:"distanceToHyper"`
	DistanceToDash  float64 `json:"distanceToDash"`
	HigherSnapped   bool    `json:"higherSnapped,omitempty"`
}

func catchRows(objs []*catch.Object, table catch.SnapTable, tier *difficulty.Tier) []catchRow {
	rows := make([]catchRow, 0, len(objs))

	for _, o := range catch.Flatten(objs) {
		row := catchRow{
			Time:            o.Time,
			Kind:            o.Kind.String(),
			X:               o.X,
			Movement:        o.MovementType.String(),
			Direction:       o.NoteDirection.String(),
			DistanceToHyper: o.DistanceToHyper,
			DistanceToDash:  o.DistanceToDash,
		}

		if tier != nil && o.Target != nil {
			row.HigherSnapped = table.IsHigherSnapped(o, o.Target, *tier)
		}

		rows = append(rows, row)
	}

	return rows
}

func newCatchCmd(a *app) *cobra.Command {
	var tierName string

	cmd := &cobra.Command{
		Use:   "catch <file>",
		Short: "Print the catcher movement towards every fruit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadBeatmap(args[0])
			if err != nil {
				return err
			}

			var tier *difficulty.Tier

			if tierName != "" {
				t, err := difficulty.ParseTier(tierName)
				if err != nil {
					return err
				}

				tier = &t
			}

			snapTable, err := a.cfg.SnapTable()
			if err != nil {
				return err
			}

			rows := catchRows(catch.New(b), snapTable, tier)

			if a.cfg.Output == settings.OutputJSON {
				return writeJSON(a.out, rows)
			}

			header := []string{"Time", "Kind", "X", "Movement", "Direction", "To hyper", "To dash"}
			if tier != nil {
				header = append(header, "Higher snapped")
			}

			table := newTable(a.out, header...)

			for _, r := range rows {
				row := []string{
					strconv.FormatFloat(r.Time, 'f', 0, 64),
					r.Kind,
					strconv.FormatFloat(float64(r.X), 'f', 0, 32),
					r.Movement,
					r.Direction,
					float2(r.DistanceToHyper),
					float2(r.DistanceToDash),
				}

				if tier != nil {
					row = append(row, strconv.FormatBool(r.HigherSnapped))
				}

				table.Append(row)
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVarP(&tierName, "tier", "t", "", "mark movements snapped tighter than this difficulty tier allows")

	return cmd
}
