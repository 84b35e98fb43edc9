// File: selector.go
// Role: next-step strategies for Maze walks.
// Determinism:
//   - First and Greedy are pure functions of the cell.
//   - Random is deterministic for a fixed seed (WithSeed).
// Contract (all variants):
//   - Dead end → (nil, nil), never an error.
//   - Uninitialized cell → ErrUninitialized.

package maze

import (
	"fmt"
	"strings"
)

// Selector picks the next cell of a walk from the passable neighbors of the
// current cell. The set of variants is closed: First, Random and Greedy.
type Selector interface {
	// NextCell returns the next cell, or nil when c is a dead end.
	NextCell(c *Cell) (*Cell, error)

	// Name returns the canonical lower-case name of the strategy.
	Name() string

	sealed()
}

// Canonical selector names accepted by SelectorByName.
const (
	NameFirst  = "first"
	NameRandom = "random"
	NameGreedy = "greedy"
)

// First selects the connected cell with the lowest id.
type First struct{}

// NextCell implements Selector.
func (First) NextCell(c *Cell) (*Cell, error) {
	nbs, err := c.connectedView()
	if err != nil {
		return nil, err
	}
	if len(nbs) == 0 {
		return nil, nil
	}

	return nbs[0], nil
}

// Name implements Selector.
func (First) Name() string { return NameFirst }

func (First) sealed() {}

// Random selects a connected cell uniformly at random. Candidates are
// ordered by id and the index is drawn from [0, size).
//
// A Random built with WithRand or WithSeed owns a *rand.Rand and is not safe
// for concurrent use; the zero-option Random uses the process-wide source
// and is.
type Random struct {
	opts options
}

// NewRandom returns a Random selector configured by opts.
func NewRandom(opts ...Option) *Random {
	return &Random{opts: resolveOptions(opts...)}
}

// NextCell implements Selector.
func (r *Random) NextCell(c *Cell) (*Cell, error) {
	nbs, err := c.connectedView()
	if err != nil {
		return nil, err
	}
	if len(nbs) == 0 {
		return nil, nil
	}

	return nbs[r.opts.intn(len(nbs))], nil
}

// Name implements Selector.
func (*Random) Name() string { return NameRandom }

func (*Random) sealed() {}

// Greedy selects the connected cell with the shortest passage time.
// Ties go to the lowest id.
type Greedy struct{}

// NextCell implements Selector.
func (Greedy) NextCell(c *Cell) (*Cell, error) {
	nbs, err := c.connectedView()
	if err != nil {
		return nil, err
	}

	// nbs is id-ordered, so a strict comparison keeps the lowest id on ties.
	var best *Cell
	bestTime := Impassable
	for _, nb := range nbs {
		if t := c.passages[nb]; t < bestTime {
			best, bestTime = nb, t
		}
	}

	return best, nil
}

// Name implements Selector.
func (Greedy) Name() string { return NameGreedy }

func (Greedy) sealed() {}

// SelectorByName resolves a selector from its name (case-insensitive).
// opts apply to the random selector only.
func SelectorByName(name string, opts ...Option) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameFirst:
		return First{}, nil
	case NameRandom:
		return NewRandom(opts...), nil
	case NameGreedy:
		return Greedy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, name)
	}
}
