// Package labyrinth is an in-memory maze routing engine: build a maze of
// cells joined by timed one-way passages, walk it with a selector, and
// measure how long routes and exits take.
//
// What's inside:
//
//	maze/         — Cell, Route, Maze and the First/Random/Greedy selectors
//	builder/      — path, cycle, star, wheel, complete, grid, random and
//	                declared layouts with seeded RNG and passage-time options
//	mazefile/     — YAML maze files: parse, validate, build, encode, watch
//	explore/      — reachability (BFS) and fastest times (Dijkstra) as a
//	                baseline for selectors
//	cmd/mazewalk/ — command-line walker over files or generated layouts
//
// Quick ASCII example:
//
//	Gate -3-> Hall -2-> Well
//	  |         |
//	  x         5 (back to Gate)
//	  v
//	Garden -1-> Well
//
// The greedy selector walks Gate -> Hall -> Well in 5 time units; the
// impassable passage (x) to Garden is never taken.
//
//	go get github.com/katalvlaran/labyrinth/maze
package labyrinth
