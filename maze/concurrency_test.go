package maze_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
)

// TestConcurrentNewCellIDs creates cells from many goroutines and checks
// that every id is distinct.
func TestConcurrentNewCellIDs(t *testing.T) {
	const workers, perWorker = 16, 200
	ids := make(chan uint64, workers*perWorker)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- maze.NewCell().ID()
				_ = maze.NewRoute()
				_ = maze.NewMaze()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, workers*perWorker)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

// TestConcurrentRoutes walks one committed maze from many goroutines.
func TestConcurrentRoutes(t *testing.T) {
	cs := labeled("A", "B", "C", "D")
	link(t, cs[0], map[*maze.Cell]int{cs[1]: 1, cs[2]: 2})
	link(t, cs[1], map[*maze.Cell]int{cs[3]: 3})
	link(t, cs[2], map[*maze.Cell]int{cs[3]: 1})
	deadEnd(t, cs[3])
	m := newMaze(t, cs...)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(seed int64) {
			defer wg.Done()
			for _, sel := range []maze.Selector{maze.First{}, maze.Greedy{}, maze.NewRandom(maze.WithSeed(seed))} {
				r, err := m.Route(cs[0], sel)
				assert.NoError(t, err)
				tt, err := r.TravelTime()
				assert.NoError(t, err)
				assert.Contains(t, []int{3, 4}, tt)
			}
			_, err := m.AverageExitTime(cs[3], maze.First{})
			assert.NoError(t, err)
		}(int64(w))
	}
	wg.Wait()
}
