// Package builder provides passage-time distributions for maze constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
)

// maxPassageTime is the largest passable time; maze.Impassable is reserved.
const maxPassageTime = maze.Impassable - 1

// WeightFn produces a passage time given an optional *rand.Rand source.
// Results must be ≥ 1; constructors refuse anything else with
// ErrInvalidPassageTime. maze.Impassable is accepted and records a
// passage that is never traversed.
type WeightFn func(rng *rand.Rand) int

// DefaultWeightFn always returns DefaultPassageTime.
func DefaultWeightFn(_ *rand.Rand) int {
	return DefaultPassageTime
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1 or value is maze.Impassable.
func ConstantWeightFn(value int) WeightFn {
	if value < 1 || value > maxPassageTime {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [1,%d], got %d", maxPassageTime, value))
	}

	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Panics unless 1 ≤ min ≤ max < maze.Impassable.
// A nil rng yields DefaultPassageTime.
func UniformWeightFn(min, max int) WeightFn {
	if min < 1 || max < min || max > maxPassageTime {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultPassageTime
		}
		if max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// From1To100WeightFn returns a passage time uniformly in [1,100].
func From1To100WeightFn(rng *rand.Rand) int {
	return UniformWeightFn(1, 100)(rng)
}

// NormalWeightFn samples N(mean, stddev), rounded and clipped to
// [1, maze.Impassable-1]. Panics if stddev < 0. A nil rng yields
// DefaultPassageTime.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultPassageTime
		}
		return clipTime(math.Round(rng.NormFloat64()*stddev + mean))
	}
}

// ExponentialWeightFn samples 1 + Exp(rate), rounded and clipped.
// Panics if rate ≤ 0. A nil rng yields DefaultPassageTime.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultPassageTime
		}
		return clipTime(1 + math.Round(rng.ExpFloat64()/rate))
	}
}

// clipTime maps a float sample onto the passable integer range.
func clipTime(x float64) int {
	if x < 1 {
		return 1
	}
	if x >= float64(maxPassageTime) {
		return maxPassageTime
	}

	return int(x)
}

// WithConstantWeight sets a fixed passage time via ConstantWeightFn.
func WithConstantWeight(t int) BuilderOption {
	return WithWeightFn(ConstantWeightFn(t))
}

// WithUniformWeight sets passage times ∼ U{min..max} via UniformWeightFn.
func WithUniformWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets passage times ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets passage times ∼ 1+Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
