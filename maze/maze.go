// File: maze.go
// Role: Maze, a write-once set of cells, and the route-building walk.
// Determinism:
//   - Cells and String list cells by ascending id.
//   - Walks are deterministic for First, Greedy and seeded Random selectors.
// Concurrency:
//   - A committed Maze may be walked from many goroutines, as long as each
//     goroutine uses its own seeded Random selector (or the unseeded one).

package maze

import (
	"fmt"
	"sort"
	"strings"
)

// Maze is the walkable universe: an unordered set of valid cells.
type Maze struct {
	id      uint64
	valid   bool
	members map[*Cell]struct{}
	ordered []*Cell // members by ascending id
}

// NewMaze returns an uninitialized Maze with the next process-unique id.
func NewMaze() *Maze {
	return &Maze{id: mazeSeq.Add(1)}
}

// ID returns the process-unique identifier of m.
func (m *Maze) ID() uint64 { return m.id }

// IsValid reports whether cells have been committed.
func (m *Maze) IsValid() bool { return m.valid }

// AddCells commits the member cells of m exactly once. Duplicates collapse.
//
// It returns false without error if m is already valid or cells is nil.
// Every cell must be valid; otherwise m stays uninitialized and the error
// wraps ErrUninitialized.
//
// Complexity: O(n log n).
func (m *Maze) AddCells(cells []*Cell) (bool, error) {
	if m.valid || cells == nil {
		return false, nil
	}

	members := make(map[*Cell]struct{}, len(cells))
	ordered := make([]*Cell, 0, len(cells))
	for i, c := range cells {
		if c == nil || !c.IsValid() {
			return false, fmt.Errorf("Maze.AddCells: cell at index %d: %w", i, ErrUninitialized)
		}
		if _, dup := members[c]; dup {
			continue
		}
		members[c] = struct{}{}
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].id < ordered[j].id })

	m.members = members
	m.ordered = ordered
	m.valid = true

	return true, nil
}

// Contains reports whether c is a member of m.
func (m *Maze) Contains(c *Cell) bool {
	_, ok := m.members[c]

	return ok
}

// Len returns the number of member cells (0 while uninitialized).
func (m *Maze) Len() int { return len(m.ordered) }

// Cells returns the member cells ordered by ascending id.
func (m *Maze) Cells() ([]*Cell, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	out := make([]*Cell, len(m.ordered))
	copy(out, m.ordered)

	return out, nil
}

// Route walks m from start, asking sel for each next cell, and packages the
// walk as a committed Route. A nil sel yields an empty Route.
//
// The walk stops when it leaves the maze (the route is then empty), revisits
// a cell (the repeated cell is appended) or reaches a dead end.
//
// Errors:
//   - ErrUninitialized if m is not valid, or a visited cell is not valid.
func (m *Maze) Route(start *Cell, sel Selector) (*Route, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	if sel == nil {
		return packRoute(nil)
	}
	path, err := m.walk(start, sel, nil)
	if err != nil {
		return nil, err
	}

	return packRoute(path)
}

// RouteFirst is Route with the First selector.
func (m *Maze) RouteFirst(start *Cell) (*Route, error) {
	return m.Route(start, First{})
}

// RouteRandom is Route with a Random selector configured by opts.
func (m *Maze) RouteRandom(start *Cell, opts ...Option) (*Route, error) {
	return m.Route(start, NewRandom(opts...))
}

// RouteGreedy is Route with the Greedy selector.
func (m *Maze) RouteGreedy(start *Cell) (*Route, error) {
	return m.Route(start, Greedy{})
}

// AverageExitTime walks from every member cell except exit towards exit and
// returns the mean travel time. If any walk fails to end at exit, or is
// impassable, the result is ImpassableAverage. A maze with no cell besides
// exit yields 0.
func (m *Maze) AverageExitTime(exit *Cell, sel Selector) (float64, error) {
	if err := m.check(); err != nil {
		return 0, err
	}

	var (
		total float64
		n     int
	)
	for _, c := range m.ordered {
		if c == exit {
			continue
		}
		if sel == nil {
			return ImpassableAverage, nil
		}
		path, err := m.walk(c, sel, exit)
		if err != nil {
			return 0, err
		}
		r, err := packRoute(path)
		if err != nil {
			return 0, err
		}
		if !r.Reaches(exit) {
			return ImpassableAverage, nil
		}
		t, _ := r.TravelTime()
		if t == Impassable {
			return ImpassableAverage, nil
		}
		total += float64(t)
		n++
	}
	if n == 0 {
		return 0, nil
	}

	return total / float64(n), nil
}

// walk is the single-path, non-backtracking traversal behind Route and
// AverageExitTime. exit is nil outside exit-time mode.
func (m *Maze) walk(start *Cell, sel Selector, exit *Cell) ([]*Cell, error) {
	path := make([]*Cell, 0, len(m.ordered)+1)
	cur := start
	for {
		// 1) Leaving the maze discards the whole walk.
		if !m.Contains(cur) {
			return path[:0], nil
		}

		// 2) Revisit or exit reached: record and stop.
		if (exit != nil && cur == exit) || indexOf(path, cur) >= 0 {
			return append(path, cur), nil
		}

		// 3) Record and ask for the next step; nil means dead end.
		path = append(path, cur)
		next, err := sel.NextCell(cur)
		if err != nil {
			return nil, fmt.Errorf("maze %d: %s selector at %s: %w", m.id, sel.Name(), cur.label, err)
		}
		if next == nil {
			return path, nil
		}
		cur = next
	}
}

// packRoute commits path into a new Route.
func packRoute(path []*Cell) (*Route, error) {
	if path == nil {
		path = []*Cell{}
	}
	r := NewRoute()
	if _, err := r.AddCells(path); err != nil {
		return nil, err
	}

	return r, nil
}

// indexOf returns the first index of c in path, or -1.
func indexOf(path []*Cell, c *Cell) int {
	for i, p := range path {
		if p == c {
			return i
		}
	}

	return -1
}

// String renders every passable passage of m, one per line, as
// "A -3-> B" or "A -> dead end". An empty maze renders "empty" and an
// uninitialized one "Uninitialized Maze".
func (m *Maze) String() string {
	if !m.valid {
		return "Uninitialized Maze"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<Maze %d>:\n", m.id)
	if len(m.ordered) == 0 {
		b.WriteString("empty")

		return b.String()
	}
	for _, c := range m.ordered {
		if len(c.connected) == 0 {
			fmt.Fprintf(&b, "%s -> dead end\n", c)
			continue
		}
		for _, nb := range c.connected {
			fmt.Fprintf(&b, "%s -%d-> %s\n", c, c.passages[nb], nb)
		}
	}

	return b.String()
}

func (m *Maze) check() error {
	if !m.valid {
		return fmt.Errorf("maze %d: %w", m.id, ErrUninitialized)
	}

	return nil
}
