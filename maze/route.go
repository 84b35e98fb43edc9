// File: route.go
// Role: Route, a write-once ordered walk through cells with travel-time queries.
// Determinism:
//   - TravelTime is a pure function of the committed cells.
//   - TravelTimeRandom is deterministic for a fixed seed.

package maze

import (
	"fmt"
	"strings"
)

// Route is an ordered sequence of cells in traversal order. Cells may repeat.
type Route struct {
	id    uint64
	valid bool
	cells []*Cell
}

// NewRoute returns an uninitialized Route with the next process-unique id.
func NewRoute() *Route {
	return &Route{id: routeSeq.Add(1)}
}

// ID returns the process-unique identifier of r.
func (r *Route) ID() uint64 { return r.id }

// IsValid reports whether cells have been committed.
func (r *Route) IsValid() bool { return r.valid }

// AddCells commits the cells of r exactly once, copying the slice.
//
// It returns false without error if r is already valid or cells is nil.
// Every cell must be valid; otherwise nothing is committed and the error
// wraps ErrUninitialized.
//
// Complexity: O(n).
func (r *Route) AddCells(cells []*Cell) (bool, error) {
	if r.valid || cells == nil {
		return false, nil
	}
	for i, c := range cells {
		if c == nil || !c.IsValid() {
			return false, fmt.Errorf("Route.AddCells: cell at index %d: %w", i, ErrUninitialized)
		}
	}
	r.cells = make([]*Cell, len(cells))
	copy(r.cells, cells)
	r.valid = true

	return true, nil
}

// Cells returns a copy of the committed cells in traversal order.
func (r *Route) Cells() ([]*Cell, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	out := make([]*Cell, len(r.cells))
	copy(out, r.cells)

	return out, nil
}

// Len returns the number of cells in r (0 while uninitialized).
func (r *Route) Len() int { return len(r.cells) }

// Reaches reports whether r is valid and ends at dst.
func (r *Route) Reaches(dst *Cell) bool {
	return r.valid && len(r.cells) > 0 && r.cells[len(r.cells)-1] == dst
}

// TravelTime sums the passage times between consecutive cells.
// It returns Impassable as soon as one step is impassable, and also when the
// sum would exceed Impassable. Empty and single-cell routes take 0.
func (r *Route) TravelTime() (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}

	return r.sum(func(t int) int { return t }), nil
}

// TravelTimeRandom is TravelTime where each step contributes a uniform
// integer in [1, passage time] instead of the full time.
func (r *Route) TravelTimeRandom(opts ...Option) (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	o := resolveOptions(opts...)

	return r.sum(func(t int) int { return 1 + o.intn(t) }), nil
}

// sum walks consecutive pairs, applying step to each passable time.
func (r *Route) sum(step func(int) int) int {
	total := 0
	for i := 1; i < len(r.cells); i++ {
		// committed cells are valid, so PassageTimeTo cannot fail
		t, _ := r.cells[i-1].PassageTimeTo(r.cells[i])
		if t == Impassable {
			return Impassable
		}
		t = step(t)
		if total > Impassable-t {
			return Impassable
		}
		total += t
	}

	return total
}

// String renders r as "<Route N>: A -> B -> C", with "no passage" for an
// impassable route, "empty" for a route without cells and
// "Uninitialized Route" before commit.
func (r *Route) String() string {
	t, err := r.TravelTime()
	if err != nil {
		return "Uninitialized Route"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<Route %d>: ", r.id)
	switch {
	case t == Impassable:
		b.WriteString("no passage")
	case len(r.cells) == 0:
		b.WriteString("empty")
	default:
		for i, c := range r.cells {
			if i > 0 {
				b.WriteString(" -> ")
			}
			b.WriteString(c.String())
		}
	}

	return b.String()
}

func (r *Route) check() error {
	if !r.valid {
		return fmt.Errorf("route %d: %w", r.id, ErrUninitialized)
	}

	return nil
}
