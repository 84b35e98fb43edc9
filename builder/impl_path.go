// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewCells).
//   - Adds cells via cfg.idFn in ascending index order (0..n-1).
//   - Emits passages (i-1) → i for i=1..n-1; the reverse passage too unless
//     WithOneWay is set, in which case the last cell is a dead end.
//   - Passage time: cfg.weightFn(cfg.rng), one draw per segment.
//
// Complexity:
//   - Time: O(n) cells + O(n-1) segments.
//   - Space: O(n) labels.

package builder

// Path returns a Constructor that lays out a corridor of n cells.
func Path(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathCells); err != nil {
			return err
		}

		labels := p.addCells(n, cfg.idFn)

		// Emit segments 0→1→2→...→(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err := p.link(MethodPath, cfg, labels[i-1], labels[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
