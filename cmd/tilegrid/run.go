package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilegrid/internal/config"
	"github.com/katalvlaran/tilegrid/puzzle"
	"github.com/katalvlaran/tilegrid/search"
)

// Report is the YAML summary of one solved input.
type Report struct {
	Input        string `yaml:"input"`
	Score        string `yaml:"score"`
	Fingerprint  string `yaml:"fingerprint,omitempty"`
	Occupied     int    `yaml:"occupied"`
	Nodes        int64  `yaml:"nodes"`
	Leaves       int64  `yaml:"leaves"`
	Improvements int64  `yaml:"improvements"`
	Truncated    bool   `yaml:"truncated"`
	ElapsedMs    int64  `yaml:"elapsed_ms"`
	Error        string `yaml:"error,omitempty"`
}

// solveReader parses one instance from r, solves it and writes the
// solution to w.
func solveReader(ctx context.Context, name string, r io.Reader, w io.Writer, cfg config.Config) (Report, error) {
	in, err := puzzle.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", name, err)
	}
	g, err := in.Build()
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", name, err)
	}

	logger := log.With().Str("input", name).Logger()
	res, err := search.Solve(ctx, g,
		search.WithTimeLimit(cfg.TimeLimit),
		search.WithMaxNodes(cfg.MaxNodes),
		search.WithLogger(logger),
	)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", name, err)
	}
	if err := puzzle.WriteSolution(w, res.Best, res.Score); err != nil {
		return Report{}, fmt.Errorf("%s: write solution: %w", name, err)
	}
	logger.Info().Str("score", puzzle.FormatScore(res.Score)).Msg("best-score")

	rep := Report{
		Input:        name,
		Score:        puzzle.FormatScore(res.Score),
		Nodes:        res.Stats.Nodes,
		Leaves:       res.Stats.Leaves,
		Improvements: res.Stats.Improvements,
		Truncated:    res.Stats.Truncated,
		ElapsedMs:    res.Stats.Elapsed.Milliseconds(),
	}
	if res.Best != nil {
		rep.Fingerprint = strconv.FormatUint(res.Best.Fingerprint(), 16)
		rep.Occupied = len(res.Best.Placements())
	}

	return rep, nil
}

// solveFile solves the instance at path, writing to out ("-" for stdout).
func solveFile(ctx context.Context, path, out string, cfg config.Config) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()

	if out == "-" {
		return solveReader(ctx, path, f, os.Stdout, cfg)
	}
	w, err := os.Create(out)
	if err != nil {
		return Report{}, err
	}
	rep, err := solveReader(ctx, path, f, w, cfg)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = cerr
	}

	return rep, err
}

// run solves every input. A single input writes to cfg.Output; several
// inputs are solved concurrently, each to "<input>.out". In batch mode a
// failed input keeps its slot, with Error set.
func run(ctx context.Context, inputs []string, cfg config.Config) ([]Report, error) {
	if len(inputs) == 1 {
		rep, err := solveFile(ctx, inputs[0], cfg.Output, cfg)
		if err != nil {
			return nil, err
		}
		return []Report{rep}, nil
	}

	reports := make([]Report, len(inputs))
	var g errgroup.Group
	g.SetLimit(cfg.Parallelism)
	start := time.Now()
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			rep, err := solveFile(ctx, in, in+".out", cfg)
			if err != nil {
				log.Err(err).Str("input", in).Msg("solve-failed")
				reports[i] = Report{Input: in, Error: err.Error()}
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	err := g.Wait()
	log.Info().Int("inputs", len(inputs)).Dur("elapsed", time.Since(start)).Msg("batch-finished")

	return reports, err
}

// writeReport stores reports as YAML at path.
func writeReport(path string, reports []Report) error {
	data, err := yaml.Marshal(reports)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
