// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewCells); n == 1 is a single dead end.
//   • Adds cells via cfg.idFn in ascending index order.
//   • For each unordered pair {i,j}, i<j, in lexicographic order, emits
//     i ⇄ j with one shared time draw.
//
// Complexity:
//   • Time: O(n) cells + O(n²) passages.
//   • Space: O(n) labels.

package builder

// Complete returns a Constructor where every cell reaches every other cell
// in one step. Walks on it always end by revisit or exit.
func Complete(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteCells); err != nil {
			return err
		}

		labels := p.addCells(n, cfg.idFn)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := p.addTwoWay(MethodComplete, labels[i], labels[j], cfg.passageTime()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
