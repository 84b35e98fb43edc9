// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewCells).
//   • Adds cells via cfg.idFn in ascending index order (0..n-1).
//   • Emits passages i → (i+1)%n for i=0..n-1, plus reverses unless WithOneWay.
//     A one-way ring is the smallest layout where every walk ends by revisit.
//
// Complexity:
//   • Time: O(n) cells + O(n) segments.
//   • Space: O(n) labels.

package builder

// Cycle returns a Constructor that lays out an n-cell ring.
func Cycle(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleCells); err != nil {
			return err
		}

		labels := p.addCells(n, cfg.idFn)

		// Emit ring segments in ascending i; i==n-1 closes the ring at 0.
		for i := 0; i < n; i++ {
			if err := p.link(MethodCycle, cfg, labels[i], labels[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
