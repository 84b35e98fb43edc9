package maze

import (
	"errors"
	"math"
	"sync/atomic"
)

// Impassable is the passage and route time meaning "no usable passage".
const Impassable = math.MaxInt

// ImpassableAverage is the AverageExitTime result when some cell cannot
// reach the exit.
const ImpassableAverage = math.MaxFloat64

// Sentinel errors for maze operations.
var (
	// ErrUninitialized indicates a query against a Cell, Route or Maze
	// whose one-time commit has not succeeded.
	ErrUninitialized = errors.New("maze: object is uninitialized")

	// ErrAlreadyValid indicates a second attempt to commit passages.
	ErrAlreadyValid = errors.New("maze: cell is already valid and its passages cannot be updated")

	// ErrInvalidTime indicates a non-positive passage time.
	ErrInvalidTime = errors.New("maze: a non-positive travel time is invalid")

	// ErrNilInput indicates a nil passage map or a nil cell in a commit.
	ErrNilInput = errors.New("maze: input is nil")

	// ErrUnknownSelector indicates SelectorByName received an unsupported name.
	ErrUnknownSelector = errors.New("maze: unknown selector")
)

// Status tags the outcome of a passage commit.
type Status uint8

const (
	StatusOK Status = iota
	StatusAlreadyValid
	StatusInvalidTime
	StatusNilInput
	StatusUnknown
)

// StatusOf classifies an error returned by Cell.SetPassages.
// A nil error is StatusOK; errors outside the commit taxonomy are StatusUnknown.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrAlreadyValid):
		return StatusAlreadyValid
	case errors.Is(err, ErrInvalidTime):
		return StatusInvalidTime
	case errors.Is(err, ErrNilInput):
		return StatusNilInput
	default:
		return StatusUnknown
	}
}

// String returns the human-readable message for s.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return ""
	case StatusAlreadyValid:
		return "the cell is already valid and the passages cannot be updated"
	case StatusInvalidTime:
		return "a non-positive travel time is invalid"
	case StatusNilInput:
		return "the passage map is nil"
	default:
		return "error"
	}
}

// Per-kind id counters. Each starts at zero; the first id handed out is 1.
var (
	cellSeq  atomic.Uint64
	routeSeq atomic.Uint64
	mazeSeq  atomic.Uint64
)
