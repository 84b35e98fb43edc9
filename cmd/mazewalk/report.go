package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/katalvlaran/labyrinth/explore"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/mazefile"
)

// reporter walks a maze and prints routes, times and the average exit time,
// next to what an exhaustive search says is possible.
type reporter struct {
	out   io.Writer
	log   *slog.Logger
	sel   maze.Selector
	runs  int
	start string // label; empty falls back to the file's start, then the first cell
	exit  string // label; empty falls back to the file's exit
	rng   *rand.Rand
}

func newReporter(out io.Writer, log *slog.Logger, opts cliOptions, seed int64) (*reporter, error) {
	rng := rand.New(rand.NewSource(seed))
	sel, err := maze.SelectorByName(opts.Selector, maze.WithRand(rng))
	if err != nil {
		return nil, err
	}

	return &reporter{
		out:   out,
		log:   log,
		sel:   sel,
		runs:  opts.Runs,
		start: opts.Start,
		exit:  opts.Exit,
		rng:   rng,
	}, nil
}

// report prints one block for lab.
func (r *reporter) report(lab *mazefile.Labyrinth) error {
	m := lab.Layout.Maze

	start, err := r.resolve("start", r.start, lab.Start, lab)
	if err != nil {
		return err
	}
	if start == nil {
		cells := lab.Layout.Cells()
		if len(cells) == 0 {
			return fmt.Errorf("maze %q has no cells", lab.Name)
		}
		start = cells[0]
	}
	exit, err := r.resolve("exit", r.exit, lab.Exit, lab)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "maze %s: %d cells, selector %s, start %s\n", lab.Name, m.Len(), r.sel.Name(), start.Label())
	r.log.Debug("walking", "maze", lab.Name, "maze_id", m.ID(), "start", start.Label(), "runs", r.runs)

	for i := 1; i <= r.runs; i++ {
		route, err := m.Route(start, r.sel)
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		t, err := route.TravelTime()
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		rt, err := route.TravelTimeRandom(maze.WithRand(r.rng))
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		fmt.Fprintf(r.out, "run %d: %s | time %s | randomized %s\n", i, route, formatTime(t), formatTime(rt))
	}

	reach, err := explore.Reachable(m, start)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "reachable from %s: %d/%d cells\n", start.Label(), len(reach.Order), m.Len())

	if exit == nil {
		return nil
	}
	avg, err := m.AverageExitTime(exit, r.sel)
	if err != nil {
		return err
	}
	if avg == maze.ImpassableAverage {
		fmt.Fprintf(r.out, "average exit time to %s: impassable\n", exit.Label())
	} else {
		fmt.Fprintf(r.out, "average exit time to %s: %.3f\n", exit.Label(), avg)
	}

	times, err := explore.Fastest(m, start)
	if err != nil {
		return err
	}
	path, err := times.PathTo(exit)
	if err != nil {
		fmt.Fprintf(r.out, "fastest to %s: impassable\n", exit.Label())
		return nil
	}
	fmt.Fprintf(r.out, "fastest to %s: %d via %s\n", exit.Label(), times.To(exit), joinLabels(path))

	return nil
}

// resolve picks the flag label over the file's cell.
func (r *reporter) resolve(field, label string, fromFile *maze.Cell, lab *mazefile.Labyrinth) (*maze.Cell, error) {
	if label == "" {
		return fromFile, nil
	}
	c := lab.Layout.Cell(label)
	if c == nil {
		return nil, fmt.Errorf("%s: unknown cell %q in maze %q", field, label, lab.Name)
	}

	return c, nil
}

func formatTime(t int) string {
	if t == maze.Impassable {
		return "impassable"
	}

	return fmt.Sprint(t)
}

func joinLabels(cells []*maze.Cell) string {
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = c.Label()
	}

	return strings.Join(labels, " -> ")
}
