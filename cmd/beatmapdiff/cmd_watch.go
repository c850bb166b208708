package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/osufile"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// settleDelay lets editors finish writing before a file is read
const settleDelay = 100 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Rate beatmaps in a directory again whenever they are saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), args[0])
		},
	}
}

func (a *app) watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	defer watcher.Close()

	if err = watcher.Add(dir); err != nil {
		return err
	}

	paths, err := collectPaths([]string{dir})
	if err != nil {
		return err
	}

	if len(paths) > 0 {
		if err = renderResults(a.out, a.cfg.Output, a.runBatch(ctx, paths)); err != nil {
			return err
		}
	}

	log.Println("Watching", dir, "for changes")

	pending := make(map[string]struct{})

	timer := time.NewTimer(settleDelay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if !osufile.IsBeatmapFile(event.Name) {
				continue
			}

			pending[filepath.Clean(event.Name)] = struct{}{}

			timer.Reset(settleDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Println("Watcher error:", err)
		case <-timer.C:
			changed := maps.Keys(pending)
			slices.Sort(changed)

			clear(pending)

			startTime := time.Now()

			if err = renderResults(a.out, a.cfg.Output, a.runBatch(ctx, changed)); err != nil {
				return err
			}

			log.Println("Reloaded", len(changed), "beatmaps in", time.Since(startTime).Truncate(time.Millisecond).String())
		}
	}
}
