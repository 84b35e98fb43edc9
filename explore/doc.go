// Package explore analyzes a committed maze.Maze beyond what a single
// selector walk shows.
//
// A selector walk follows one passage per cell and stops at the first
// revisit or dead end. The searches here explore every branch instead:
//
//   - Reachable: breadth-first search; which cells can be reached from a
//     start at all, and in how few passages.
//   - Fastest: Dijkstra over passage times; the minimum travel time from a
//     source to every cell, i.e. the best any route could do. Comparing it
//     with Maze.Route or Maze.AverageExitTime shows how far a selector is
//     from optimal.
//
// Both searches only follow passable passages between member cells.
// Impassable entries and passages leading out of the maze are ignored.
// Neighbors are visited in ascending cell id, so results are deterministic.
//
// Options:
//
//   - WithContext(ctx): cancel long searches.
//   - WithOnVisit(fn): hook called as each cell is settled; an error aborts.
//   - WithMaxDepth(d): Reachable stops after d passages (0 = unlimited).
//   - WithMaxTime(t): Fastest ignores cells farther than t (0 = unlimited).
//
// Errors (sentinel): ErrNilMaze, ErrCellNotFound, ErrUnreachable,
// ErrOptionViolation. An uninitialized maze yields maze.ErrUninitialized.
//
// Example:
//
//	times, err := explore.Fastest(m, gate)
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, _ := times.PathTo(well)
//	fmt.Println(times.To(well), path)
package explore
