// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic; there are no globals.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn         ("0","1","2",...)
//   • rng      = nil                 (pure unless seeded)
//   • weightFn = DefaultWeightFn     (every passage takes DefaultPassageTime)
//   • oneWay   = false               (Path/Cycle/RandomSparse emit both directions)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Cell label strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Passage time generator; must yield values ≥ 1.
	weightFn WeightFn
	// oneWay drops the reverse passage on Path, Cycle and RandomSparse.
	// Star, Wheel spokes, Complete and Grid stay symmetric regardless.
	oneWay bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
		oneWay:   false,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// passageTime draws one passage time from the configured generator.
func (cfg builderConfig) passageTime() int {
	return cfg.weightFn(cfg.rng)
}
