// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center": a ring of n-1 cells plus a hub, so n ≥ 4.
//
// Contract:
//   • Builds the rim with Cycle(n-1) under the same cfg (so WithOneWay
//     makes the rim one-way).
//   • Adds the hub "Center" and two-way spokes to each rim cell in index order.
//
// Complexity:
//   • Time: O(n) cells + O(n) rim + O(2n) spoke passages.

package builder

import "fmt"

// Wheel returns a Constructor that lays out a ring with a central hub.
func Wheel(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelCells); err != nil {
			return err
		}

		if err := Cycle(n-1)(p, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}

		p.addCell(CenterCellLabel)

		for i := 0; i < n-1; i++ {
			if err := p.addTwoWay(MethodWheel, CenterCellLabel, cfg.idFn(i), cfg.passageTime()); err != nil {
				return err
			}
		}

		return nil
	}
}
