package mazefile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/mazefile"
)

const courtyard = `version: "1"
name: courtyard
start: Gate
exit: Well
cells:
  - name: Gate
    passages:
      Hall: 3
      Garden: impassable
  - name: Hall
    passages:
      Well: 2
      Gate: 5
  - name: Garden
    passages:
      Well: 1
  - name: Well
`

// writeFile writes data under a fresh temp dir and returns the path.
func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	return path
}

func TestParse_Courtyard(t *testing.T) {
	f, err := mazefile.Parse([]byte(courtyard))
	require.NoError(t, err)
	assert.Equal(t, "courtyard", f.Name)
	assert.Equal(t, "Gate", f.Start)
	assert.Equal(t, "Well", f.Exit)
	require.Len(t, f.Cells, 4)
	assert.Equal(t, mazefile.PassageTime(3), f.Cells[0].Passages["Hall"])
	assert.Equal(t, mazefile.PassageTime(maze.Impassable), f.Cells[0].Passages["Garden"])
	assert.Empty(t, f.Cells[3].Passages)
	require.NoError(t, mazefile.Validate(f))
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := mazefile.Parse([]byte("cells:\n  - name: A\n"))
	require.NoError(t, err)
	assert.Equal(t, mazefile.CurrentVersion, f.Version)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"syntax", "cells: [\n"},
		{"unknown field", "cells:\n  - name: A\n    colour: red\n"},
		{"word time", "cells:\n  - name: A\n    passages:\n      A: fast\n"},
		{"nested time", "cells:\n  - name: A\n    passages:\n      A: {t: 1}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mazefile.Parse([]byte(tc.data))
			assert.ErrorIs(t, err, mazefile.ErrParse)
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	cell := func(name string, ps map[string]mazefile.PassageTime) mazefile.CellDef {
		return mazefile.CellDef{Name: name, Passages: ps}
	}

	tests := []struct {
		name string
		file mazefile.File
		want string
	}{
		{"version", mazefile.File{Version: "2", Cells: []mazefile.CellDef{cell("A", nil)}}, `unsupported version "2"`},
		{"no cells", mazefile.File{Version: "1"}, "cells must not be empty"},
		{"no name", mazefile.File{Version: "1", Cells: []mazefile.CellDef{cell("", nil)}}, "cells[0]: name is required"},
		{
			"duplicate",
			mazefile.File{Version: "1", Cells: []mazefile.CellDef{cell("A", nil), cell("A", nil)}},
			`duplicate cell "A" (cells[0] and cells[1])`,
		},
		{
			"unknown target",
			mazefile.File{Version: "1", Cells: []mazefile.CellDef{cell("A", map[string]mazefile.PassageTime{"B": 1})}},
			`cell "A": passage to unknown cell "B"`,
		},
		{
			"zero time",
			mazefile.File{Version: "1", Cells: []mazefile.CellDef{
				cell("A", map[string]mazefile.PassageTime{"B": 0}), cell("B", nil),
			}},
			`cell "A": passage to "B" has non-positive time 0`,
		},
		{
			"unknown start",
			mazefile.File{Version: "1", Start: "Z", Cells: []mazefile.CellDef{cell("A", nil)}},
			`start: unknown cell "Z"`,
		},
		{
			"unknown exit",
			mazefile.File{Version: "1", Exit: "Z", Cells: []mazefile.CellDef{cell("A", nil)}},
			`exit: unknown cell "Z"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := mazefile.Validate(&tc.file)
			require.ErrorIs(t, err, mazefile.ErrInvalid)
			assert.Contains(t, err.Error(), tc.want)

			_, err = mazefile.Build(&tc.file)
			assert.ErrorIs(t, err, mazefile.ErrInvalid)
		})
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	f := &mazefile.File{
		Version: "1",
		Exit:    "Nowhere",
		Cells: []mazefile.CellDef{
			{Name: "A", Passages: map[string]mazefile.PassageTime{"B": -1, "C": 2}},
			{Name: "A"},
		},
	}
	err := mazefile.Validate(f)
	require.ErrorIs(t, err, mazefile.ErrInvalid)
	for _, want := range []string{"duplicate cell", `unknown cell "B"`, "non-positive time -1", `unknown cell "C"`, "exit:"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestBuild_Courtyard(t *testing.T) {
	f, err := mazefile.Parse([]byte(courtyard))
	require.NoError(t, err)
	lab, err := mazefile.Build(f)
	require.NoError(t, err)

	assert.Equal(t, "courtyard", lab.Name)
	require.NotNil(t, lab.Start)
	require.NotNil(t, lab.Exit)
	assert.Equal(t, "Gate", lab.Start.Label())
	assert.Equal(t, "Well", lab.Exit.Label())

	// File order fixes id order.
	cells := lab.Layout.Cells()
	for i := 1; i < len(cells); i++ {
		assert.Less(t, cells[i-1].ID(), cells[i].ID())
	}

	m := lab.Layout.Maze
	gate, hall, well := lab.Start, lab.Layout.Cell("Hall"), lab.Exit

	r, err := m.RouteFirst(gate)
	require.NoError(t, err)
	got, err := r.Cells()
	require.NoError(t, err)
	assert.Equal(t, []*maze.Cell{gate, hall, gate}, got)

	r, err = m.RouteGreedy(gate)
	require.NoError(t, err)
	tm, err := r.TravelTime()
	require.NoError(t, err)
	assert.Equal(t, 5, tm)
	assert.True(t, r.Reaches(well))

	avg, err := m.AverageExitTime(well, maze.Greedy{})
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0, avg, 1e-9)

	avg, err = m.AverageExitTime(well, maze.First{})
	require.NoError(t, err)
	assert.Equal(t, maze.ImpassableAverage, avg)
}

func TestBuild_NoStartOrExit(t *testing.T) {
	f, err := mazefile.Parse([]byte("cells:\n  - name: A\n"))
	require.NoError(t, err)
	lab, err := mazefile.Build(f)
	require.NoError(t, err)
	assert.Nil(t, lab.Start)
	assert.Nil(t, lab.Exit)
	assert.Equal(t, 1, lab.Layout.Maze.Len())
}

func TestLoad(t *testing.T) {
	lab, err := mazefile.Load(writeFile(t, courtyard))
	require.NoError(t, err)
	assert.Equal(t, 4, lab.Layout.Maze.Len())

	_, err = mazefile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = mazefile.Load(writeFile(t, "cells: []\n"))
	assert.ErrorIs(t, err, mazefile.ErrInvalid)
}
