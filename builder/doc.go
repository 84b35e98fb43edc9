// Package builder generates committed maze layouts from named topologies,
// for fixtures, benchmarks and the mazewalk CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMaze:         resolves options, runs constructors, commits cells.
//     – Layout:            the committed *maze.Maze plus cells by label.
//   - Topologies (Constructor implementations):
//     – Path, Cycle:       corridors and rings (one-way with WithOneWay).
//     – Star, Wheel:       hub "Center" with two-way spokes.
//     – Complete:          every cell one step from every other.
//     – Grid:              rows×cols rooms labeled "r,c".
//     – RandomSparse:      independent links with probability p.
//     – Declared:          explicit cells and passages (maze files).
//   - Cell label schemes (IDFn):
//     – DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), AlphanumericIDFn, PrefixIDFn.
//   - Passage-time distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     NormalWeightFn, ExponentialWeightFn. All yield times in
//     [1, maze.Impassable-1].
//
// Guarantees:
//
//   - All-or-nothing: constructors fill a private plan; cells are created
//     and committed only after every constructor succeeded.
//   - Cell ids ascend with construction order, so the maze's id-based
//     tie-breaks follow the documented emission order of each topology.
//   - Deterministic for equal options, seed and constructor order.
//   - Option constructors panic on meaningless input; constructors return
//     wrapped sentinels (ErrTooFewCells, ErrInvalidProbability, ...).
//
// Constructors compose: cells are merged by label, so
//
//	BuildMaze(nil, Path(3), Star(3))
//
// yields cells "0","1","2","Center" with the star's leaves "1","2" shared
// with the path.
package builder
