package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
)

// labeled creates one uninitialized cell per label, in order, so ids ascend
// with the argument position.
func labeled(labels ...string) []*maze.Cell {
	out := make([]*maze.Cell, len(labels))
	for i, l := range labels {
		out[i] = maze.NewCell(maze.WithLabel(l))
	}

	return out
}

// link commits passages on c and fails the test on error.
func link(t testing.TB, c *maze.Cell, passages map[*maze.Cell]int) {
	t.Helper()
	require.NoError(t, c.SetPassages(passages))
}

// deadEnd commits an empty passage map on each cell.
func deadEnd(t testing.TB, cells ...*maze.Cell) {
	t.Helper()
	for _, c := range cells {
		link(t, c, map[*maze.Cell]int{})
	}
}

// newMaze commits cells into a fresh Maze.
func newMaze(t testing.TB, cells ...*maze.Cell) *maze.Maze {
	t.Helper()
	m := maze.NewMaze()
	ok, err := m.AddCells(cells)
	require.NoError(t, err)
	require.True(t, ok)

	return m
}

// newRoute commits cells into a fresh Route.
func newRoute(t testing.TB, cells ...*maze.Cell) *maze.Route {
	t.Helper()
	if cells == nil {
		cells = []*maze.Cell{}
	}
	r := maze.NewRoute()
	ok, err := r.AddCells(cells)
	require.NoError(t, err)
	require.True(t, ok)

	return r
}

// routeCells returns the committed cells of r.
func routeCells(t testing.TB, r *maze.Route) []*maze.Cell {
	t.Helper()
	cells, err := r.Cells()
	require.NoError(t, err)

	return cells
}
