// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Path: n=1 < min=2: builder: ...").
//   • Runtime code never panics; option constructors (WithX) panic on
//     meaningless input instead.
//
// Validation priority when several checks fail:
//   ErrTooFewCells → ErrInvalidProbability → ErrNeedRandSource →
//   ErrInvalidPassageTime → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewCells indicates that a size parameter (n, rows, cols) is below the
// minimum for the requested constructor.
var ErrTooFewCells = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidPassageTime indicates that the configured WeightFn produced a
// non-positive passage time. Cells reject such batches, so the layout
// is refused before any cell is committed.
var ErrInvalidPassageTime = errors.New("builder: passage time must be positive")

// ErrConstructFailed indicates a structural failure: a nil constructor, a
// passage naming an unknown cell, or a commit rejected by the maze package.
var ErrConstructFailed = errors.New("builder: construction failed")
