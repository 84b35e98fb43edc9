// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Cell labels use the fixed scheme "r,c" (row-major) instead of cfg.idFn
//     so coordinates stay readable in routes.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewCells).
//   • Adds cells in row-major order.
//   • For each (r,c) emits Right then Bottom neighbor where present, always
//     two-way with one time draw per wall opening.
//
// Complexity:
//   • Time: O(rows*cols) cells + O(rows*cols) passages.
//   • Space: O(1) extra.

package builder

import "fmt"

// Grid returns a Constructor that lays out a rows×cols room grid.
func Grid(rows, cols int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewCells)
		}

		// 2) Cells in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p.addCell(gridLabel(r, c))
			}
		}

		// 3) Openings: Right then Bottom.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridLabel(r, c)
				if c+1 < cols {
					if err := p.addTwoWay(MethodGrid, u, gridLabel(r, c+1), cfg.passageTime()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := p.addTwoWay(MethodGrid, u, gridLabel(r+1, c), cfg.passageTime()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
