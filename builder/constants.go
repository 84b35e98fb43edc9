// Package builder defines shared constants used by maze constructors, keeping
// defaults and validation consistent across topologies.
package builder

//-----------------------------------------------------------------------------
// Constructor Names
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodDeclared is the canonical name for the Declared constructor.
	MethodDeclared = "Declared"
	// MethodBuildMaze tags errors raised by the orchestrator itself.
	MethodBuildMaze = "BuildMaze"
)

//-----------------------------------------------------------------------------
// Cell Labels
//-----------------------------------------------------------------------------

// CenterCellLabel is the fixed label of the hub cell in Star and Wheel.
// Composing both in one layout merges their hubs into a single cell.
const CenterCellLabel = "Center"

//-----------------------------------------------------------------------------
// Minimum Cell Counts
//-----------------------------------------------------------------------------

// MinPathCells is the smallest path that has a passage.
const MinPathCells = 2

// MinCycleCells is the smallest ring without self-passages.
const MinCycleCells = 3

// MinStarCells is one hub plus one leaf.
const MinStarCells = 2

// MinWheelCells is a ring of MinCycleCells plus the hub.
const MinWheelCells = 4

// MinCompleteCells allows the single-cell (dead-end) maze.
const MinCompleteCells = 1

// MinGridDim is the smallest allowed rows or cols; a 1×1 grid is one dead end.
const MinGridDim = 1

// MinRandomSparseCells is the smallest random layout.
const MinRandomSparseCells = 1

//-----------------------------------------------------------------------------
// Passage Times and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultPassageTime is assigned to every passage when no WeightFn is set.
const DefaultPassageTime = 1

// MinProbability is the inclusive lower bound of RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of RandomSparse's p.
const MaxProbability = 1.0
