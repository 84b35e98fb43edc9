// Package maze models a maze as a directed, weighted graph of cells and walks
// it with interchangeable next-step selectors.
//
// What:
//
//   - Cell: a node with a write-once set of directed passages. Each passage
//     carries a strictly positive integer travel time; Impassable marks a
//     passage that exists but can never be taken.
//   - Selector: a closed strategy for choosing the next cell of a walk.
//     Three variants exist: First (lowest id), Random (uniform) and Greedy
//     (shortest passage, lowest id on ties).
//   - Route: a write-once ordered sequence of cells with deterministic and
//     randomized travel time.
//   - Maze: a write-once set of cells defining the walkable universe. It
//     builds routes by repeatedly asking a Selector for the next cell.
//
// Lifecycle:
//
//	NewCell/NewRoute/NewMaze → uninitialized
//	SetPassages/AddCells     → committed once (all-or-nothing)
//	queries                  → read-only; ErrUninitialized before commit
//
// Walk termination (Maze.Route):
//
//	start not in maze       → empty route
//	start already on path   → append start, stop (revisit)
//	start is the exit cell  → append start, stop (AverageExitTime only)
//	selector returns nil    → stop (dead end)
//
// A walk never backtracks and is bounded by Len()+1 cells, so it always
// terminates.
//
// Errors:
//
//	ErrUninitialized    query on an object whose commit has not succeeded
//	ErrAlreadyValid     second commit of passages
//	ErrInvalidTime      non-positive passage time
//	ErrNilInput         nil passage map or nil cell in a commit
//	ErrUnknownSelector  SelectorByName with an unsupported name
//
// Concurrency:
//
// Committed objects are immutable and safe for concurrent reads. Ids come
// from atomic counters, so cells, routes and mazes may be created from any
// goroutine. Committing the same uninitialized object from several
// goroutines at once is not supported; guard it with sync.Once if needed.
package maze
