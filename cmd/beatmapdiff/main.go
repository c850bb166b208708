package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance"
	"github.com/Givikap120/beatmap-difficulty/app/settings"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	cfg        settings.Config
	out        io.Writer
}

func (a *app) engineOptions() performance.Options {
	opts := performance.DefaultOptions()
	opts.CheckInterval = a.cfg.CheckInterval

	return opts
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "beatmapdiff",
		Short:         "Rate and inspect osu! beatmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load(a.configPath)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.out = cmd.OutOrStdout()

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML or YAML config file")

	root.AddCommand(newCalcCmd(a))
	root.AddCommand(newStepsCmd(a))
	root.AddCommand(newPeaksCmd(a))
	root.AddCommand(newCatchCmd(a))
	root.AddCommand(newTaikoCmd(a))
	root.AddCommand(newWatchCmd(a))

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
