package explore

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// Reach holds the outcome of Reachable:
//   - Order: cells in visit sequence (breadth-first, neighbors by id).
//   - Depth: passages from the start to each reached cell.
//   - Parent: predecessor of each reached cell in the search tree.
type Reach struct {
	Order  []*maze.Cell
	Depth  map[*maze.Cell]int
	Parent map[*maze.Cell]*maze.Cell
}

// Reaches reports whether c was reached.
func (r *Reach) Reaches(c *maze.Cell) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo returns a path with the fewest passages from the start to dst.
func (r *Reach) PathTo(dst *maze.Cell) ([]*maze.Cell, error) {
	return pathTo(r.Parent, r.Reaches, dst)
}

// queueItem pairs a cell with its depth.
type queueItem struct {
	cell  *maze.Cell
	depth int
}

// reachWalker encapsulates mutable search state.
type reachWalker struct {
	m     *maze.Maze
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Reach
}

// Reachable runs a breadth-first search over the passable passages of m
// from start, staying inside m. Unlike a selector walk it explores every
// branch, so it shows which cells any route could possibly visit.
// Returns ErrNilMaze, ErrCellNotFound, ErrOptionViolation, an
// uninitialized-maze error, or any OnVisit error.
func Reachable(m *maze.Maze, start *maze.Cell, opts ...Option) (*Reach, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	cells, err := checkStart(m, start)
	if err != nil {
		return nil, err
	}

	n := len(cells)
	w := &reachWalker{
		m:     m,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Reach{
			Order:  make([]*maze.Cell, 0, n),
			Depth:  make(map[*maze.Cell]int, n),
			Parent: make(map[*maze.Cell]*maze.Cell, n),
		},
	}
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

func (w *reachWalker) enqueue(c *maze.Cell, d int, parent *maze.Cell) {
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = parent
	}
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *reachWalker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("explore: OnVisit error at %s: %w", item.cell, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *reachWalker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := item.cell.ConnectedCells()
	if err != nil {
		return fmt.Errorf("explore: neighbors of %s: %w", item.cell, err)
	}
	for _, nbr := range neighbors {
		// Passages leading out of the maze are not followed.
		if w.m.Contains(nbr) && !w.res.Reaches(nbr) {
			w.enqueue(nbr, next, item.cell)
		}
	}

	return nil
}
