package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <path>...",
		Short: "Print the star rating of beatmap files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectPaths(args)
			if err != nil {
				return err
			}

			if len(paths) == 0 {
				return errNoBeatmaps
			}

			results := a.runBatch(cmd.Context(), paths)

			if err = renderResults(a.out, a.cfg.Output, results); err != nil {
				return err
			}

			if n := failures(results); n > 0 {
				return fmt.Errorf("%d of %d beatmaps failed", n, len(results))
			}

			return nil
		},
	}
}
