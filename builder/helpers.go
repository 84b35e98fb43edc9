// Package builder provides the internal layout plan that constructors fill
// before any maze cell is committed.
//
// Design principles:
//   - Constructors only touch the plan; cells are created and committed once,
//     after every constructor succeeded, so a failure leaves nothing behind.
//   - Plan indices follow insertion order, which fixes cell ids, labels and
//     the order of Layout.Cells.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/labyrinth/maze"
)

// plan accumulates labeled cells and passages between them.
type plan struct {
	labels   []string       // index -> label
	index    map[string]int // label -> index
	passages []map[int]int  // from index -> to index -> time
}

func newPlan() *plan {
	return &plan{index: make(map[string]int)}
}

// addCell registers label and returns its index. Re-adding a label is a
// no-op that returns the existing index, so constructors compose.
// Complexity: O(1) amortized.
func (p *plan) addCell(label string) int {
	if i, ok := p.index[label]; ok {
		return i
	}
	i := len(p.labels)
	p.labels = append(p.labels, label)
	p.index[label] = i
	p.passages = append(p.passages, make(map[int]int))

	return i
}

// addCells registers idFn(0..n-1) in order and returns their labels.
func (p *plan) addCells(n int, idFn IDFn) []string {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = idFn(i)
		p.addCell(labels[i])
	}

	return labels
}

// addPassage records from→to with time t in [1, maze.Impassable]. A later
// passage between the same pair overwrites the earlier time.
// Complexity: O(1).
func (p *plan) addPassage(method, from, to string, t int) error {
	if t < 1 {
		return fmt.Errorf("%s: passage %s→%s, t=%d: %w", method, from, to, t, ErrInvalidPassageTime)
	}
	u, ok := p.index[from]
	if !ok {
		return fmt.Errorf("%s: unknown cell %q: %w", method, from, ErrConstructFailed)
	}
	v, ok := p.index[to]
	if !ok {
		return fmt.Errorf("%s: unknown cell %q: %w", method, to, ErrConstructFailed)
	}
	p.passages[u][v] = t

	return nil
}

// addTwoWay records u→v and v→u with the same time.
func (p *plan) addTwoWay(method, u, v string, t int) error {
	if err := p.addPassage(method, u, v, t); err != nil {
		return err
	}

	return p.addPassage(method, v, u, t)
}

// link emits u→v, plus v→u unless oneWay is set. Both share one drawn time.
func (p *plan) link(method string, cfg builderConfig, u, v string) error {
	t := cfg.passageTime()
	if cfg.oneWay {
		return p.addPassage(method, u, v, t)
	}

	return p.addTwoWay(method, u, v, t)
}

// commit creates one maze.Cell per planned label in index order, commits the
// passages and wraps everything in a committed Maze.
// Complexity: O(V + P) plus the maze package's O(V log V) id sort.
func (p *plan) commit() (*Layout, error) {
	cells := make([]*maze.Cell, len(p.labels))
	for i, label := range p.labels {
		cells[i] = maze.NewCell(maze.WithLabel(label))
	}

	for i, c := range cells {
		passages := make(map[*maze.Cell]int, len(p.passages[i]))
		for j, t := range p.passages[i] {
			passages[cells[j]] = t
		}
		if err := c.SetPassages(passages); err != nil {
			return nil, fmt.Errorf("%s: SetPassages(%s): %w: %w", MethodBuildMaze, c.Label(), ErrConstructFailed, err)
		}
	}

	m := maze.NewMaze()
	if _, err := m.AddCells(cells); err != nil {
		return nil, fmt.Errorf("%s: AddCells: %w: %w", MethodBuildMaze, ErrConstructFailed, err)
	}

	byLabel := make(map[string]*maze.Cell, len(cells))
	for i, c := range cells {
		byLabel[p.labels[i]] = c
	}

	return &Layout{Maze: m, cells: cells, byLabel: byLabel}, nil
}

// gridLabel formats a grid coordinate as "r,c".
func gridLabel(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
