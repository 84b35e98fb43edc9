package mazefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/maze"
)

var (
	// ErrParse reports malformed YAML or unknown fields.
	ErrParse = errors.New("mazefile: parse error")
	// ErrInvalid reports a well-formed file that breaks a schema rule.
	ErrInvalid = errors.New("mazefile: invalid maze")
)

// Labyrinth is a built maze file.
type Labyrinth struct {
	Name   string
	Layout *builder.Layout
	// Start and Exit are nil when the file does not declare them.
	Start *maze.Cell
	Exit  *maze.Cell
}

// Parse decodes data strictly: unknown fields are errors.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	return &f, nil
}

// Validate checks f for:
//   - a supported version and at least one cell
//   - missing or duplicate cell names
//   - passages to unknown cells and non-positive times
//   - unknown start or exit
//
// All violations are reported together.
func Validate(f *File) error {
	var errs []string
	if f.Version != CurrentVersion {
		errs = append(errs, fmt.Sprintf("unsupported version %q", f.Version))
	}
	if len(f.Cells) == 0 {
		errs = append(errs, "cells must not be empty")
	}

	names := make(map[string]int, len(f.Cells)) // name → first index
	for i, c := range f.Cells {
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("cells[%d]: name is required", i))
			continue
		}
		if prev, ok := names[c.Name]; ok {
			errs = append(errs, fmt.Sprintf("duplicate cell %q (cells[%d] and cells[%d])", c.Name, prev, i))
			continue
		}
		names[c.Name] = i
	}

	for _, c := range f.Cells {
		for _, dst := range sortedTargets(c.Passages) {
			if _, ok := names[dst]; !ok {
				errs = append(errs, fmt.Sprintf("cell %q: passage to unknown cell %q", c.Name, dst))
			}
			if t := c.Passages[dst]; t < 1 {
				errs = append(errs, fmt.Sprintf("cell %q: passage to %q has non-positive time %d", c.Name, dst, t))
			}
		}
	}

	for _, ref := range [...]struct{ field, name string }{{"start", f.Start}, {"exit", f.Exit}} {
		if ref.name == "" {
			continue
		}
		if _, ok := names[ref.name]; !ok {
			errs = append(errs, fmt.Sprintf("%s: unknown cell %q", ref.field, ref.name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}

// Build validates f and commits it as a maze. Cells are created in file
// order; passages within a cell follow name order.
func Build(f *File) (*Labyrinth, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	labels := make([]string, len(f.Cells))
	var passages []builder.Passage
	for i, c := range f.Cells {
		labels[i] = c.Name
		for _, dst := range sortedTargets(c.Passages) {
			passages = append(passages, builder.Passage{From: c.Name, To: dst, Time: int(c.Passages[dst])})
		}
	}

	l, err := builder.BuildMaze(nil, builder.Declared(labels, passages))
	if err != nil {
		return nil, fmt.Errorf("mazefile: build %q: %w", f.Name, err)
	}

	lab := &Labyrinth{Name: f.Name, Layout: l}
	if f.Start != "" {
		lab.Start = l.Cell(f.Start)
	}
	if f.Exit != "" {
		lab.Exit = l.Cell(f.Exit)
	}

	return lab, nil
}

// Load reads, parses, validates and builds the file at path.
func Load(path string) (*Labyrinth, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lab, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lab, nil
}

// sortedTargets returns the keys of ps in name order.
func sortedTargets(ps map[string]PassageTime) []string {
	out := make([]string, 0, len(ps))
	for k := range ps {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
