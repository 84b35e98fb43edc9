// Package builder_test contains unit tests for the WeightFn implementations,
// covering both sampled ranges and constructor panics.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/maze"
)

// TestWeightFnConstructors verifies that constructors panic on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_impassable", func() builder.WeightFn { return builder.ConstantWeightFn(maze.Impassable) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers the runtime ranges of each WeightFn:
// every sample is a passable time and nil sources fall back to the default.
func TestWeightFnBehavior(t *testing.T) {
	assert.Equal(t, builder.DefaultPassageTime, builder.DefaultWeightFn(nil))
	assert.Equal(t, 7, builder.ConstantWeightFn(7)(nil))
	assert.Equal(t, 3, builder.UniformWeightFn(3, 3)(rand.New(rand.NewSource(1))))

	fns := map[string]builder.WeightFn{
		"uniform":     builder.UniformWeightFn(1, 100),
		"from1to100":  builder.From1To100WeightFn,
		"normal":      builder.NormalWeightFn(2, 5),
		"exponential": builder.ExponentialWeightFn(0.5),
	}
	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, builder.DefaultPassageTime, fn(nil))

			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 200; i++ {
				w := fn(rng)
				assert.GreaterOrEqual(t, w, 1)
				assert.Less(t, w, maze.Impassable)
			}
		})
	}

	// from1to100 stays within its declared range
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		assert.LessOrEqual(t, builder.From1To100WeightFn(rng), 100)
	}
}
