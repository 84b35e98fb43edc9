package mazefile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/mazefile"
)

func TestFromLayout_RebuildsSameMaze(t *testing.T) {
	l, err := builder.BuildMaze([]builder.BuilderOption{
		builder.WithSeed(3), builder.WithUniformWeight(1, 9),
	}, builder.Grid(2, 2))
	require.NoError(t, err)

	f, err := mazefile.FromLayout("grid", l)
	require.NoError(t, err)
	data, err := mazefile.Encode(f)
	require.NoError(t, err)

	back, err := mazefile.Parse(data)
	require.NoError(t, err)
	lab, err := mazefile.Build(back)
	require.NoError(t, err)
	assert.Equal(t, "grid", lab.Name)

	orig := l.Cells()
	rebuilt := lab.Layout.Cells()
	require.Len(t, rebuilt, len(orig))
	for i, c := range orig {
		assert.Equal(t, c.Label(), rebuilt[i].Label())
		for j, d := range orig {
			want, err := c.PassageTimeTo(d)
			require.NoError(t, err)
			got, err := rebuilt[i].PassageTimeTo(rebuilt[j])
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s→%s", c.Label(), d.Label())
		}
	}
}

func TestEncode_ImpassableWord(t *testing.T) {
	f := &mazefile.File{
		Version: mazefile.CurrentVersion,
		Cells: []mazefile.CellDef{
			{Name: "A", Passages: map[string]mazefile.PassageTime{"B": mazefile.PassageTime(maze.Impassable)}},
			{Name: "B"},
		},
	}
	data, err := mazefile.Encode(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "B: impassable")

	back, err := mazefile.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f.Cells, back.Cells)
}
