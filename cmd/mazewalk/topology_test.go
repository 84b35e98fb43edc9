package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/builder"
)

func TestParseTopology(t *testing.T) {
	cases := []struct {
		gen   string
		cells int
	}{
		{"path:4", 4},
		{"cycle:5", 5},
		{"star:3", 3},
		{"wheel:5", 5},
		{"complete:4", 4},
		{"grid:3x4", 12},
		{"sparse:6:0.5", 6},
		{" Grid:2x2 ", 4},
	}
	for _, tc := range cases {
		t.Run(tc.gen, func(t *testing.T) {
			con, err := parseTopology(tc.gen)
			require.NoError(t, err)
			l, err := builder.BuildMaze([]builder.BuilderOption{builder.WithSeed(1)}, con)
			require.NoError(t, err)
			assert.Equal(t, tc.cells, l.Maze.Len())
		})
	}
}

func TestParseTopology_Errors(t *testing.T) {
	for _, gen := range []string{"", "path", "path:", "path:x", "torus:3", "grid:3", "grid:ax2", "grid:2xb", "sparse:5", "sparse:a:0.1", "sparse:5:p"} {
		_, err := parseTopology(gen)
		assert.ErrorIs(t, err, errBadTopology, gen)
	}
}

func TestParseTopology_SizeCheckedByBuilder(t *testing.T) {
	con, err := parseTopology("cycle:2")
	require.NoError(t, err)
	_, err = builder.BuildMaze(nil, con)
	assert.ErrorIs(t, err, builder.ErrTooFewCells)
}
