// Command mazewalk loads a maze from a YAML file or generates one from a
// topology, walks it with a selector and prints routes, travel times and the
// average exit time.
//
//	mazewalk -maze courtyard.yaml -selector greedy -exit Well
//	mazewalk -gen grid:3x4 -maxtime 9 -seed 7 -runs 3 -exit 2,3
//	mazewalk -gen sparse:10:0.3 -oneway -dump > random.yaml
//	mazewalk -maze courtyard.yaml -watch
//
// MAZEWALK_SELECTOR, MAZEWALK_SEED, MAZEWALK_LOG_LEVEL and MAZEWALK_RUNS
// (read from the environment or a .env file) supply flag defaults.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/mazefile"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("mazewalk failed", "err", err)
		os.Exit(1)
	}
}

// cliOptions is the environment Config with flags applied on top.
type cliOptions struct {
	Config
	MazePath string
	Gen      string
	OneWay   bool
	MaxTime  int
	Start    string
	Exit     string
	Watch    bool
	Dump     bool
}

func parseArgs(args []string, def Config, stderr io.Writer) (cliOptions, error) {
	opts := cliOptions{Config: def}

	fs := flag.NewFlagSet("mazewalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.MazePath, "maze", "", "path to a YAML maze file")
	fs.StringVar(&opts.Gen, "gen", "", "generate a maze: path:N cycle:N star:N wheel:N complete:N grid:RxC sparse:N:P")
	fs.BoolVar(&opts.OneWay, "oneway", false, "generated path, cycle and sparse passages run one way")
	fs.IntVar(&opts.MaxTime, "maxtime", 1, "generated passage times are uniform in [1, maxtime]")
	fs.StringVar(&opts.Start, "start", "", "start cell label (default: file start, else first cell)")
	fs.StringVar(&opts.Exit, "exit", "", "exit cell label for the average exit time (default: file exit)")
	fs.StringVar(&opts.Selector, "selector", def.Selector, "selector: first, random or greedy")
	fs.Int64Var(&opts.Seed, "seed", def.Seed, "random seed; 0 picks one from the clock")
	fs.IntVar(&opts.Runs, "runs", def.Runs, "routes to walk per report")
	fs.StringVar(&opts.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&opts.Watch, "watch", false, "re-run whenever the -maze file changes")
	fs.BoolVar(&opts.Dump, "dump", false, "print the maze as YAML instead of walking it")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	switch {
	case fs.NArg() > 0:
		return cliOptions{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	case opts.MazePath == "" && opts.Gen == "":
		return cliOptions{}, errors.New("one of -maze or -gen is required")
	case opts.MazePath != "" && opts.Gen != "":
		return cliOptions{}, errors.New("-maze and -gen are mutually exclusive")
	case opts.Watch && opts.MazePath == "":
		return cliOptions{}, errors.New("-watch needs -maze")
	case opts.Runs < 1:
		return cliOptions{}, fmt.Errorf("-runs must be at least 1, got %d", opts.Runs)
	case opts.MaxTime < 1:
		return cliOptions{}, fmt.Errorf("-maxtime must be at least 1, got %d", opts.MaxTime)
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(".env")
	if err != nil {
		return err
	}
	opts, err := parseArgs(args, cfg, stderr)
	if err != nil {
		return err
	}
	level, err := parseLevel(opts.LogLevel)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("picked seed", "seed", seed)
	}

	if opts.Gen != "" {
		lab, err := generate(opts, seed)
		if err != nil {
			return err
		}
		return walkOrDump(stdout, logger, opts, seed, lab)
	}

	if !opts.Watch {
		lab, err := mazefile.Load(opts.MazePath)
		if err != nil {
			return err
		}
		return walkOrDump(stdout, logger, opts, seed, lab)
	}

	return watch(ctx, stdout, logger, opts, seed)
}

// generate builds the -gen topology.
func generate(opts cliOptions, seed int64) (*mazefile.Labyrinth, error) {
	con, err := parseTopology(opts.Gen)
	if err != nil {
		return nil, err
	}

	bopts := []builder.BuilderOption{builder.WithSeed(seed)}
	if opts.MaxTime > 1 {
		bopts = append(bopts, builder.WithUniformWeight(1, opts.MaxTime))
	}
	if opts.OneWay {
		bopts = append(bopts, builder.WithOneWay())
	}

	layout, err := builder.BuildMaze(bopts, con)
	if err != nil {
		return nil, err
	}

	return &mazefile.Labyrinth{Name: opts.Gen, Layout: layout}, nil
}

func walkOrDump(out io.Writer, logger *slog.Logger, opts cliOptions, seed int64, lab *mazefile.Labyrinth) error {
	if opts.Dump {
		f, err := mazefile.FromLayout(lab.Name, lab.Layout)
		if err != nil {
			return err
		}
		if lab.Start != nil {
			f.Start = lab.Start.Label()
		}
		if lab.Exit != nil {
			f.Exit = lab.Exit.Label()
		}
		data, err := mazefile.Encode(f)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	r, err := newReporter(out, logger, opts, seed)
	if err != nil {
		return err
	}

	return r.report(lab)
}

// watch reports the current maze, then again after every successful reload,
// until ctx is cancelled.
func watch(ctx context.Context, out io.Writer, logger *slog.Logger, opts cliOptions, seed int64) error {
	loader, err := mazefile.NewLoader(opts.MazePath)
	if err != nil {
		return err
	}
	if err := walkOrDump(out, logger, opts, seed, loader.Current()); err != nil {
		return err
	}

	loader.OnChange(func(lab *mazefile.Labyrinth) {
		logger.Info("maze reloaded", "path", opts.MazePath, "name", lab.Name, "cells", lab.Layout.Maze.Len())
		if err := walkOrDump(out, logger, opts, seed, lab); err != nil {
			logger.Warn("report failed", "err", err)
		}
	})
	loader.OnError(func(err error) {
		logger.Warn("maze reload failed, keeping previous", "path", opts.MazePath, "err", err)
	})

	stop, err := loader.Watch()
	if err != nil {
		return err
	}
	defer stop()

	logger.Info("watching", "path", opts.MazePath)
	<-ctx.Done()
	logger.Info("stopped watching", "path", opts.MazePath)

	return nil
}
