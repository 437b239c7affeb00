// Command tilegrid solves tile-placement puzzles: it reads an instance,
// runs the time-bounded search and writes the best placement found.
//
//	tilegrid [-config file] [-time-limit 5m] [-max-nodes n] [-out path]
//	         [-report path] [-log-level info] input...
//
// With several inputs each solution is written next to its input as
// "<input>.out" and the inputs are solved concurrently.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/tilegrid/internal/config"
)

var (
	configPath  = flag.String("config", "", "optional config file (yaml, toml, json)")
	timeLimit   = flag.Duration("time-limit", 0, "wall-clock budget per input")
	maxNodes    = flag.Int64("max-nodes", 0, "cap on search nodes (cells and leaves) per input (0 = unlimited)")
	output      = flag.String("out", "", "output path for a single input, - for stdout")
	reportPath  = flag.String("report", "", "write a YAML run report to this path")
	logLevel    = flag.String("log-level", "", "log level: debug, info, warn, error")
	parallelism = flag.Int("parallelism", 0, "concurrent solves in batch mode")
)

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "time-limit":
			cfg.TimeLimit = *timeLimit
		case "max-nodes":
			cfg.MaxNodes = *maxNodes
		case "out":
			cfg.Output = *output
		case "report":
			cfg.Report = *reportPath
		case "log-level":
			cfg.LogLevel = *logLevel
		case "parallelism":
			cfg.Parallelism = *parallelism
		}
	})
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load-config")
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("validate-config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("parse-log-level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reports, err := run(ctx, flag.Args(), cfg)
	if cfg.Report != "" && len(reports) > 0 {
		if rerr := writeReport(cfg.Report, reports); rerr != nil {
			log.Error().Err(rerr).Str("path", cfg.Report).Msg("write-report")
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("solve")
	}
}
