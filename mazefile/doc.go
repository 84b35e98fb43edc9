// Package mazefile reads hand-written maze descriptions in YAML, validates
// them and builds committed mazes through package builder.
//
// A file looks like:
//
//	version: "1"
//	name: courtyard
//	start: Gate
//	exit: Well
//	cells:
//	  - name: Gate
//	    passages:
//	      Hall: 3
//	      Garden: impassable
//	  - name: Hall
//	    passages:
//	      Well: 2
//	  - name: Garden
//	  - name: Well
//
// Cells are created in file order, so earlier cells have lower ids and win
// First and Greedy tie-breaks. A cell without passages is a dead end.
// Passage times are positive integers or the word "impassable".
//
// Loader keeps the latest valid maze and, once Watch is running, rebuilds
// it whenever the file changes. A change that fails to parse, validate or
// build keeps the previous maze and is reported through OnError.
package mazefile
