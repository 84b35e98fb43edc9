package mazefile

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/builder"
)

// FromLayout describes a committed layout as a File, cells in construction
// order. Impassable passages are not exported: a cell never reports them.
func FromLayout(name string, l *builder.Layout) (*File, error) {
	f := &File{Version: CurrentVersion, Name: name}
	for _, c := range l.Cells() {
		ps, err := c.Passages()
		if err != nil {
			return nil, fmt.Errorf("mazefile: describe %s: %w", c.Label(), err)
		}
		def := CellDef{Name: c.Label()}
		if len(ps) > 0 {
			def.Passages = make(map[string]PassageTime, len(ps))
			for dst, t := range ps {
				def.Passages[dst.Label()] = PassageTime(t)
			}
		}
		f.Cells = append(f.Cells, def)
	}

	return f, nil
}

// Encode renders f as YAML with two-space indentation.
func Encode(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("mazefile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("mazefile: encode: %w", err)
	}

	return buf.Bytes(), nil
}
