package explore

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// Times holds the outcome of Fastest.
type Times struct {
	Source *maze.Cell
	// Time maps every member cell to its minimum travel time from Source,
	// maze.Impassable when unreachable (or beyond MaxTime).
	Time map[*maze.Cell]int
	// Prev maps each reached cell to its predecessor on a fastest path.
	Prev map[*maze.Cell]*maze.Cell
}

// To returns the minimum travel time to dst, maze.Impassable if unreachable.
func (t *Times) To(dst *maze.Cell) int {
	if v, ok := t.Time[dst]; ok {
		return v
	}

	return maze.Impassable
}

// PathTo returns a fastest path from Source to dst.
func (t *Times) PathTo(dst *maze.Cell) ([]*maze.Cell, error) {
	return pathTo(t.Prev, func(c *maze.Cell) bool { return t.To(c) != maze.Impassable }, dst)
}

// Fastest computes minimum travel times from src to every cell of m
// (Dijkstra with a lazy-decrease-key min-heap). It is the lower bound any
// selector's route can achieve, which makes it a baseline for comparing
// selectors. Passage times are positive, so no negative-weight check is
// needed; sums that would reach maze.Impassable are treated as unreachable.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Fastest(m *maze.Maze, src *maze.Cell, opts ...Option) (*Times, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	cells, err := checkStart(m, src)
	if err != nil {
		return nil, err
	}

	r := &runner{
		m:       m,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[*maze.Cell]bool, len(cells)),
		res: &Times{
			Source: src,
			Time:   make(map[*maze.Cell]int, len(cells)),
			Prev:   make(map[*maze.Cell]*maze.Cell, len(cells)),
		},
	}
	for _, c := range cells {
		r.res.Time[c] = maze.Impassable
	}
	r.res.Time[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: src, time: 0})

	if err := r.process(); err != nil {
		return nil, err
	}
	// Cells found but never settled lie beyond MaxTime.
	for c := range r.res.Time {
		if !r.visited[c] {
			r.res.Time[c] = maze.Impassable
			delete(r.res.Prev, c)
		}
	}

	return r.res, nil
}

// runner holds the mutable state for a single Fastest execution.
type runner struct {
	m       *maze.Maze
	opts    Options
	ctx     context.Context
	visited map[*maze.Cell]bool
	pq      nodePQ
	res     *Times
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.cell] {
			continue // stale entry
		}
		if r.opts.MaxTime > 0 && item.time > r.opts.MaxTime {
			break
		}
		r.visited[item.cell] = true
		if err := r.opts.OnVisit(item.cell, item.time); err != nil {
			return fmt.Errorf("explore: OnVisit error at %s: %w", item.cell, err)
		}
		if err := r.relax(item.cell); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the times of u's in-maze neighbors.
func (r *runner) relax(u *maze.Cell) error {
	passages, err := u.Passages()
	if err != nil {
		return fmt.Errorf("explore: passages of %s: %w", u, err)
	}
	base := r.res.Time[u]
	for v, t := range passages {
		if !r.m.Contains(v) || r.visited[v] {
			continue
		}
		if t >= maze.Impassable-base {
			continue
		}
		next := base + t
		if next >= r.res.Time[v] {
			continue
		}
		r.res.Time[v] = next
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{cell: v, time: next})
	}

	return nil
}

// nodeItem is a cell with a tentative travel time.
type nodeItem struct {
	cell *maze.Cell
	time int
}

// nodePQ is a min-heap of *nodeItem ordered by time, then cell id, so equal
// times settle deterministically.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].time != pq[j].time {
		return pq[i].time < pq[j].time
	}
	return pq[i].cell.ID() < pq[j].cell.ID()
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
