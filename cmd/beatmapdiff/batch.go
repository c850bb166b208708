package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap"
	"github.com/Givikap120/beatmap-difficulty/app/beatmap/osufile"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/performance/api"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type result struct {
	Path       string         `json:"path"`
	Name       string         `json:"name"`
	Mode       string         `json:"mode"`
	Attributes api.Attributes `json:"attributes"`
	Error      string         `json:"error,omitempty"`

	err error
}

// collectPaths expands directories into the beatmap files below them.
func collectPaths(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && osufile.IsBeatmapFile(path) {
				paths = append(paths, path)
			}

			return nil
		})

		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

func loadBeatmap(path string) (*osufile.File, *beatmap.Beatmap, error) {
	f, err := osufile.Load(path)
	if err != nil {
		return nil, nil, err
	}

	b, err := f.Beatmap()
	if err != nil {
		return nil, nil, err
	}

	return f, b, nil
}

func (a *app) rate(ctx context.Context, path string) result {
	res := result{Path: path, Name: filepath.Base(path)}

	fail := func(err error) result {
		res.err = err
		res.Error = err.Error()

		return res
	}

	f, b, err := loadBeatmap(path)
	if err != nil {
		return fail(err)
	}

	if name := f.Name(); name != "" {
		res.Name = name
	}

	res.Mode = b.Mode.String()

	calc, err := rulesets.NewCalculator(b.Mode, a.engineOptions())
	if err != nil {
		return fail(err)
	}

	if res.Attributes, err = calc.CalculateSingle(ctx, b); err != nil {
		return fail(err)
	}

	if !res.Attributes.Finite() {
		res.Attributes = api.Attributes{}
		return fail(errNonFinite)
	}

	return res
}

// protect runs rate and turns a panic into a failed result for path.
func protect(path string, rate func() result) (res result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", errPanicked, r)
			res = result{Path: path, Name: filepath.Base(path), Error: err.Error(), err: err}
		}
	}()

	return rate()
}

// runBatch rates paths on cfg.Workers goroutines. A failing beatmap doesn't stop the others.
func (a *app) runBatch(ctx context.Context, paths []string) []result {
	runID := uuid.New()

	log.Println("Batch", runID.String(), "rating", humanize.Comma(int64(len(paths))), "beatmaps on", a.cfg.Workers, "workers")

	startTime := time.Now()

	results := make([]result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup

	for w := 0; w < min(a.cfg.Workers, len(paths)); w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				results[i] = protect(paths[i], func() result { return a.rate(ctx, paths[i]) })
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(paths); j++ {
				results[j] = result{Path: paths[j], Name: filepath.Base(paths[j]), Error: ctx.Err().Error(), err: ctx.Err()}
			}

			break feed
		}
	}

	close(jobs)
	wg.Wait()

	log.Println("Batch", runID.String(), "finished! Took", time.Since(startTime).Truncate(time.Millisecond).String())

	return results
}

func failures(results []result) int {
	n := 0

	for _, r := range results {
		if r.err != nil {
			n++
		}
	}

	return n
}

var (
	errNoBeatmaps = errors.New("no beatmap files found")
	errNonFinite  = errors.New("calculation produced a non-finite rating")
	errPanicked   = errors.New("calculation panicked")
)
