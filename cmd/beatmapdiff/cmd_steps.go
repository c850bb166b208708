package main

import (
	"strconv"

	"github.com/Givikap120/beatmap-difficulty/app/rulesets"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/skills"
	"github.com/Givikap120/beatmap-difficulty/app/settings"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStepsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "steps <file>",
		Short: "Print the star rating after every hit object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadBeatmap(args[0])
			if err != nil {
				return err
			}

			calc, err := rulesets.NewCalculator(b.Mode, a.engineOptions())
			if err != nil {
				return err
			}

			steps, err := calc.CalculateStep(cmd.Context(), b)
			if err != nil {
				return err
			}

			if a.cfg.Output == settings.OutputJSON {
				return writeJSON(a.out, steps)
			}

			table := newTable(a.out, "#", "Time", "Stars", "Max combo")

			for i, step := range steps {
				table.Append([]string{
					strconv.Itoa(i),
					strconv.FormatFloat(b.HitObjects[i].GetStartTime(), 'f', 0, 64),
					float2(step.StarRating),
					humanize.Comma(int64(step.MaxCombo)),
				})
			}

			table.Render()

			return nil
		},
	}
}

func newPeaksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "peaks <file>",
		Short: "Print the strain peak of every section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadBeatmap(args[0])
			if err != nil {
				return err
			}

			calc, err := rulesets.NewCalculator(b.Mode, a.engineOptions())
			if err != nil {
				return err
			}

			peaks, err := calc.CalculateStrainPeaks(cmd.Context(), b)
			if err != nil {
				return err
			}

			if a.cfg.Output == settings.OutputJSON {
				return writeJSON(a.out, peaks)
			}

			var kinds []skills.Kind

			header := []string{"Section"}

			for k := skills.Aim; k <= skills.Peaks; k++ {
				if _, ok := peaks.Peaks[k]; ok {
					kinds = append(kinds, k)
					header = append(header, k.DisplayName())
				}
			}

			table := newTable(a.out, append(header, "Total")...)

			for i, total := range peaks.Total {
				row := []string{strconv.Itoa(i)}

				for _, k := range kinds {
					row = append(row, float2(peaks.Peaks[k][i]))
				}

				table.Append(append(row, float2(total)))
			}

			table.Render()

			return nil
		},
	}
}
