package maze_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleMaze_RouteGreedy walks a small maze, always taking the shortest
// passage out of the current cell:
//
//	A -4-> B -1-> D
//	A -2-> C -6-> D
//	D is a dead end
func ExampleMaze_RouteGreedy() {
	a := maze.NewCell(maze.WithLabel("A"))
	b := maze.NewCell(maze.WithLabel("B"))
	c := maze.NewCell(maze.WithLabel("C"))
	d := maze.NewCell(maze.WithLabel("D"))

	_ = a.SetPassages(map[*maze.Cell]int{b: 4, c: 2})
	_ = b.SetPassages(map[*maze.Cell]int{d: 1})
	_ = c.SetPassages(map[*maze.Cell]int{d: 6})
	_ = d.SetPassages(map[*maze.Cell]int{})

	m := maze.NewMaze()
	if _, err := m.AddCells([]*maze.Cell{a, b, c, d}); err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, sel := range []maze.Selector{maze.First{}, maze.Greedy{}} {
		r, err := m.Route(a, sel)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		cells, _ := r.Cells()
		t, _ := r.TravelTime()
		fmt.Println(sel.Name(), cells, t)
	}

	// Output:
	// first [A B D] 5
	// greedy [A C D] 8
}

// ExampleMaze_AverageExitTime averages the time every cell needs to walk to
// the exit cell E.
func ExampleMaze_AverageExitTime() {
	a := maze.NewCell(maze.WithLabel("A"))
	b := maze.NewCell(maze.WithLabel("B"))
	e := maze.NewCell(maze.WithLabel("E"))

	_ = a.SetPassages(map[*maze.Cell]int{b: 1})
	_ = b.SetPassages(map[*maze.Cell]int{e: 3})
	_ = e.SetPassages(map[*maze.Cell]int{a: 2})

	m := maze.NewMaze()
	_, _ = m.AddCells([]*maze.Cell{a, b, e})

	avg, err := m.AverageExitTime(e, maze.First{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.1f\n", avg)

	// Output:
	// 3.5
}

// ExampleCell_SetPassages shows the commit-once contract.
func ExampleCell_SetPassages() {
	a := maze.NewCell(maze.WithLabel("A"))
	b := maze.NewCell(maze.WithLabel("B"))

	err := a.SetPassages(map[*maze.Cell]int{b: 0})
	fmt.Println(maze.StatusOf(err) == maze.StatusInvalidTime, a.IsValid())

	err = b.SetPassages(map[*maze.Cell]int{a: 3})
	fmt.Println(err == nil, b.IsValid())

	err = b.SetPassages(map[*maze.Cell]int{a: 1})
	fmt.Println(maze.StatusOf(err) == maze.StatusAlreadyValid)

	// Output:
	// true false
	// true true
	// true
}
