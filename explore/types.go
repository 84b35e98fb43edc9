package explore

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// Sentinel errors for exploration.
var (
	// ErrNilMaze is returned if a nil maze or cell pointer is passed.
	ErrNilMaze = errors.New("explore: maze or cell is nil")

	// ErrCellNotFound is returned when the start cell is not a member of the maze.
	ErrCellNotFound = errors.New("explore: cell not in maze")

	// ErrUnreachable is returned by PathTo for a cell the search never reached.
	ErrUnreachable = errors.New("explore: cell unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// Option configures Reachable and Fastest via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called once per cell as the search settles it, with the
	// passage count (Reachable) or travel time (Fastest) from the start.
	// Returning an error aborts the search.
	OnVisit func(c *maze.Cell, cost int) error

	// MaxDepth, if > 0, stops Reachable beyond this many passages.
	MaxDepth int

	// MaxTime, if > 0, stops Fastest beyond this travel time.
	MaxTime int

	err error
}

// DefaultOptions returns background context, no limits and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(*maze.Cell, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run as each cell is settled.
func WithOnVisit(fn func(c *maze.Cell, cost int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits Reachable to d passages from the start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxTime limits Fastest to cells within t time units of the start.
// Zero means no limit; a negative value is an ErrOptionViolation.
func WithMaxTime(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: MaxTime cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.MaxTime = t
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// checkStart validates m and start and returns m's cells in id order.
func checkStart(m *maze.Maze, start *maze.Cell) ([]*maze.Cell, error) {
	if m == nil || start == nil {
		return nil, ErrNilMaze
	}
	cells, err := m.Cells()
	if err != nil {
		return nil, fmt.Errorf("explore: %w", err)
	}
	if !m.Contains(start) {
		return nil, fmt.Errorf("%w: %s", ErrCellNotFound, start)
	}

	return cells, nil
}

// pathTo walks parent links back from dst to the start.
func pathTo(parent map[*maze.Cell]*maze.Cell, reached func(*maze.Cell) bool, dst *maze.Cell) ([]*maze.Cell, error) {
	if dst == nil || !reached(dst) {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, dst)
	}
	path := []*maze.Cell{}
	for cur := dst; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
