// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/core"
)

// Writers add a star around "hub" while readers list, clone and query it.
func TestConcurrentAddEdgeAndReads(t *testing.T) {
	g := core.NewGraph()
	const writers, readers = 64, 16

	var wg sync.WaitGroup
	wg.Add(writers + readers)
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("hub", fmt.Sprintf("v%02d", id), 0)
			assert.NoError(t, err)
		}(i)
	}
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for k := 0; k < 20; k++ {
				ids := g.Vertices()
				assert.IsIncreasing(t, ids)
				c := g.Clone()
				assert.LessOrEqual(t, c.EdgeCount(), writers)
				_, _, _, _ = g.Degree("hub")
				_ = g.Edges()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers+1, g.VertexCount())
	assert.Equal(t, writers, g.EdgeCount())
	_, _, und, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, writers, und)
}

// Racing duplicates of one undirected edge: exactly one wins.
func TestConcurrentDuplicateEdgeRejected(t *testing.T) {
	g := core.NewGraph()
	const racers = 32

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func(id int) {
			defer wg.Done()
			from, to := "a", "b"
			if id%2 == 1 {
				from, to = to, from
			}
			if _, err := g.AddEdge(from, to, 0); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, g.EdgeCount())
}
