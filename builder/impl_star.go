// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewCells).
//   - Adds the hub with fixed label "Center", then leaves via cfg.idFn for
//     i = 1..n-1.
//   - Spokes are always two-way: Center ⇄ leaf[i], one time draw per spoke.
//
// Complexity:
//   - Time: O(n) cells + O(2n-2) passages.
//   - Space: O(1) extra.

package builder

// Star returns a Constructor that lays out one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarCells); err != nil {
			return err
		}

		p.addCell(CenterCellLabel)

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			p.addCell(leaf)
			if err := p.addTwoWay(MethodStar, CenterCellLabel, leaf, cfg.passageTime()); err != nil {
				return err
			}
		}

		return nil
	}
}
