// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: each admissible link is included
//     independently with probability p.
//   - Two-way (default): unordered pairs {i,j}, i<j; a hit emits i ⇄ j.
//   - One-way: ordered pairs (i,j), i≠j; a hit emits i → j only.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewCells).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n) cells + O(n²) Bernoulli trials.
//   - Space: O(n) labels.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Passage times are drawn from the
//     same RNG right after each hit, so seed and options fix the whole layout.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples a random layout over n
// cells with link probability p. Expect dead ends and unreachable cells.
func RandomSparse(n int, prob float64) Constructor {
	return func(p *plan, cfg builderConfig) error {
		// 1) Validate in priority order.
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomSparseCells); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, prob); err != nil {
			return err
		}
		if cfg.rng == nil && prob > MinProbability && prob < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Cells.
		labels := p.addCells(n, cfg.idFn)

		// hit runs one Bernoulli trial; p ∈ {0,1} consumes no randomness.
		hit := func() bool {
			switch prob {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			default:
				return cfg.rng.Float64() < prob
			}
		}

		// 3) Trials in stable order.
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.oneWay {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := p.link(MethodRandomSparse, cfg, labels[i], labels[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
