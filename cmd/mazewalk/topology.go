package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/labyrinth/builder"
)

var errBadTopology = errors.New("bad topology")

// parseTopology turns a -gen value into a builder constructor:
//
//	path:N  cycle:N  star:N  wheel:N  complete:N  grid:RxC  sparse:N:P
func parseTopology(gen string) (builder.Constructor, error) {
	kind, rest, _ := strings.Cut(strings.ToLower(strings.TrimSpace(gen)), ":")
	if rest == "" {
		return nil, fmt.Errorf("%w: %q needs a size", errBadTopology, gen)
	}

	switch kind {
	case "path", "cycle", "star", "wheel", "complete":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadTopology, gen, err)
		}
		return map[string]func(int) builder.Constructor{
			"path":     builder.Path,
			"cycle":    builder.Cycle,
			"star":     builder.Star,
			"wheel":    builder.Wheel,
			"complete": builder.Complete,
		}[kind](n), nil

	case "grid":
		r, c, ok := strings.Cut(rest, "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q: want grid:RxC", errBadTopology, gen)
		}
		rows, err := strconv.Atoi(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadTopology, gen, err)
		}
		cols, err := strconv.Atoi(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadTopology, gen, err)
		}
		return builder.Grid(rows, cols), nil

	case "sparse":
		ns, ps, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q: want sparse:N:P", errBadTopology, gen)
		}
		n, err := strconv.Atoi(ns)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadTopology, gen, err)
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadTopology, gen, err)
		}
		return builder.RandomSparse(n, p), nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errBadTopology, kind)
	}
}
