package mazefile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/maze"
)

// CurrentVersion is the only schema version understood by this package.
const CurrentVersion = "1"

// impassableWord spells maze.Impassable in a file.
const impassableWord = "impassable"

// File is the top-level YAML structure.
type File struct {
	Version string    `yaml:"version"`
	Name    string    `yaml:"name"`
	Start   string    `yaml:"start,omitempty"`
	Exit    string    `yaml:"exit,omitempty"`
	Cells   []CellDef `yaml:"cells"`
}

// CellDef declares one cell and its outgoing passages by target name.
type CellDef struct {
	Name     string                 `yaml:"name"`
	Passages map[string]PassageTime `yaml:"passages,omitempty"`
}

// PassageTime is a passage time that also accepts the word "impassable".
type PassageTime int

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PassageTime) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: passage time must be a scalar", value.Line)
	}
	if strings.EqualFold(strings.TrimSpace(value.Value), impassableWord) {
		*p = PassageTime(maze.Impassable)
		return nil
	}
	n, err := strconv.Atoi(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: passage time %q is neither an integer nor %q", value.Line, value.Value, impassableWord)
	}
	*p = PassageTime(n)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p PassageTime) MarshalYAML() (interface{}, error) {
	if int(p) == maze.Impassable {
		return impassableWord, nil
	}

	return int(p), nil
}
