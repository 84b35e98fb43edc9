// File: cell.go
// Role: Cell, a graph node with a write-once set of weighted passages.
// Determinism:
//   - ConnectedCells is ordered by ascending cell id; selectors rely on it.
// Concurrency:
//   - Reads of a committed Cell are safe from any goroutine.
//   - SetPassages on the same Cell from several goroutines is unsupported.

package maze

import (
	"fmt"
	"sort"
	"strconv"
)

// cellState tracks the one-time commit of a Cell.
type cellState uint8

const (
	cellPending  cellState = iota // created, passages not yet committed
	cellValid                     // passages committed
	cellRejected                  // a commit failed; the cell stays invalid forever
)

// Cell is a maze node. Identity is the pointer; ID is unique per process.
type Cell struct {
	id    uint64
	label string
	state cellState

	// passages holds every committed entry, including Impassable ones.
	passages map[*Cell]int

	// connected caches passable destinations sorted by id.
	connected []*Cell
}

// CellOption configures a Cell at creation.
type CellOption func(*Cell)

// WithLabel sets the display label of a Cell. An empty label keeps the default.
func WithLabel(label string) CellOption {
	return func(c *Cell) {
		if label != "" {
			c.label = label
		}
	}
}

// NewCell returns an uninitialized Cell with the next process-unique id.
// The default label is "Cell <id>".
func NewCell(opts ...CellOption) *Cell {
	c := &Cell{id: cellSeq.Add(1)}
	c.label = "Cell " + strconv.FormatUint(c.id, 10)
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ID returns the process-unique identifier of c.
func (c *Cell) ID() uint64 { return c.id }

// Label returns the display label of c.
func (c *Cell) Label() string { return c.label }

// IsValid reports whether passages have been committed successfully.
func (c *Cell) IsValid() bool { return c.state == cellValid }

// SetPassages commits the passages of c exactly once.
//
// Every time must be strictly positive; Impassable is accepted and stored
// but never passable. The commit is all-or-nothing: on the first violation
// nothing is retained and the cell can never become valid.
//
// Errors:
//   - ErrAlreadyValid if passages were already committed.
//   - ErrInvalidTime  if any time is ≤ 0, or an earlier commit was rejected.
//   - ErrNilInput     if passages is nil or contains a nil key.
//
// Complexity: O(k log k) for k entries.
func (c *Cell) SetPassages(passages map[*Cell]int) error {
	switch c.state {
	case cellValid:
		return fmt.Errorf("SetPassages(%s): %w", c.label, ErrAlreadyValid)
	case cellRejected:
		return fmt.Errorf("SetPassages(%s): earlier commit was rejected: %w", c.label, ErrInvalidTime)
	}
	if passages == nil {
		return fmt.Errorf("SetPassages(%s): %w", c.label, ErrNilInput)
	}

	// 1) Validate the whole batch before touching c.
	var bad *Cell
	for to, t := range passages {
		if to == nil {
			return fmt.Errorf("SetPassages(%s): nil destination: %w", c.label, ErrNilInput)
		}
		if t <= 0 && (bad == nil || to.id < bad.id) {
			bad = to
		}
	}
	if bad != nil {
		c.state = cellRejected

		return fmt.Errorf("SetPassages(%s): passage to %s has time %d: %w",
			c.label, bad.label, passages[bad], ErrInvalidTime)
	}

	// 2) Copy entries and cache the passable neighbors in id order.
	own := make(map[*Cell]int, len(passages))
	connected := make([]*Cell, 0, len(passages))
	for to, t := range passages {
		own[to] = t
		if t != Impassable {
			connected = append(connected, to)
		}
	}
	sort.Slice(connected, func(i, j int) bool { return connected[i].id < connected[j].id })

	c.passages = own
	c.connected = connected
	c.state = cellValid

	return nil
}

// Passages returns a fresh map of the passable passages of c.
func (c *Cell) Passages() (map[*Cell]int, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	out := make(map[*Cell]int, len(c.connected))
	for _, to := range c.connected {
		out[to] = c.passages[to]
	}

	return out, nil
}

// PassageTimeTo returns the time from c to dst, or Impassable when c has no
// entry for dst.
func (c *Cell) PassageTimeTo(dst *Cell) (int, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	t, ok := c.passages[dst]
	if !ok {
		return Impassable, nil
	}

	return t, nil
}

// ConnectedCells returns the passable neighbors of c ordered by ascending id.
// The slice is a copy.
func (c *Cell) ConnectedCells() ([]*Cell, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	out := make([]*Cell, len(c.connected))
	copy(out, c.connected)

	return out, nil
}

// IsDeadEnd reports whether c has no passable neighbors.
func (c *Cell) IsDeadEnd() (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}

	return len(c.connected) == 0, nil
}

// String returns the label of c, or "Uninitialized Cell".
func (c *Cell) String() string {
	if !c.IsValid() {
		return "Uninitialized Cell"
	}

	return c.label
}

func (c *Cell) check() error {
	if c == nil {
		return fmt.Errorf("nil cell: %w", ErrUninitialized)
	}
	if !c.IsValid() {
		return fmt.Errorf("cell %s: %w", c.label, ErrUninitialized)
	}

	return nil
}

// connectedView returns the cached neighbor slice without copying.
// Callers must not modify it.
func (c *Cell) connectedView() ([]*Cell, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	return c.connected, nil
}
