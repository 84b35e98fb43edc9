// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMaze(bopts, cons...). Resolves cfg, runs cons in
//     order against a private plan, then commits every cell and the maze.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options, seed and constructor order ⇒ identical layouts
//     (labels, passage times and relative cell id order).
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// Constructor records cells and passages into the layout plan using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit cells and passages in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(p *plan, cfg builderConfig) error

// Layout is a committed maze together with its cells in construction order.
type Layout struct {
	// Maze holds every cell of the layout; it is already valid.
	Maze *maze.Maze

	cells   []*maze.Cell
	byLabel map[string]*maze.Cell
}

// Cells returns the layout's cells in construction order (a copy).
func (l *Layout) Cells() []*maze.Cell {
	out := make([]*maze.Cell, len(l.cells))
	copy(out, l.cells)

	return out
}

// Cell returns the cell labeled label, or nil.
func (l *Layout) Cell(label string) *maze.Cell {
	return l.byLabel[label]
}

// BuildMaze resolves the builder configuration from bopts, applies all
// constructors in order and commits the result.
// Any constructor error is wrapped with "BuildMaze: %w" and returned
// immediately; no cell is created unless every constructor succeeded.
//
// With no constructors the result is a valid, empty maze.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Constructors: Σ cost of each; commit O(V log V + P).
func BuildMaze(bopts []BuilderOption, cons ...Constructor) (*Layout, error) {
	cfg := newBuilderConfig(bopts...)
	p := newPlan()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMaze, i, ErrConstructFailed)
		}
		if err := fn(p, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMaze, err)
		}
	}

	return p.commit()
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)            cells 0..n-1, passages i→i+1 (and back unless one-way).
// Cycle(n)           Path plus n-1→0.
// Star(n)            hub "Center" and n-1 leaves, spokes always two-way.
// Wheel(n)           Cycle(n-1) plus hub "Center" with two-way spokes.
// Complete(n)        every ordered pair of distinct cells.
// Grid(rows, cols)   "r,c" cells, 4-neighborhood, always two-way.
// RandomSparse(n, p) each admissible pair linked independently with prob p.
// Declared(c, ps)    exactly the listed cells and passages.
