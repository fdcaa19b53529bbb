// SPDX-License-Identifier: MIT
package vf2

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/core"
)

type counterSnapshot struct {
	searches, mappings, states, checks float64
}

func snapshotCounters(mode Mode) counterSnapshot {
	l := mode.String()

	return counterSnapshot{
		searches: testutil.ToFloat64(searchesTotal.WithLabelValues(l)),
		mappings: testutil.ToFloat64(mappingsTotal.WithLabelValues(l)),
		states:   testutil.ToFloat64(statesTotal.WithLabelValues(l)),
		checks:   testutil.ToFloat64(feasibilityTotal.WithLabelValues(l)),
	}
}

func TestMetrics_FollowStats(t *testing.T) {
	triangle := core.NewGraph()
	k4 := core.NewGraph()
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		_, err := triangle.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	ids := []string{"w", "x", "y", "z"}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			_, err := k4.AddEdge(ids[i], ids[j], 0)
			require.NoError(t, err)
		}
	}

	before := snapshotCounters(ModeInducedSubgraph)
	m, err := NewMatcher(triangle, k4, ModeInducedSubgraph)
	require.NoError(t, err)
	assert.Equal(t, before.searches+1, testutil.ToFloat64(searchesTotal.WithLabelValues("induced")))

	// every Next publishes its own delta
	_, ok := m.Next()
	require.True(t, ok)
	mid := snapshotCounters(ModeInducedSubgraph)
	assert.Equal(t, before.mappings+1, mid.mappings)
	assert.Equal(t, before.states+float64(m.Stats().States), mid.states)
	assert.Equal(t, before.checks+float64(m.Stats().FeasibilityChecks), mid.checks)

	for range m.All() {
	}
	s := m.Stats()
	require.Equal(t, int64(24), s.Mappings)

	after := snapshotCounters(ModeInducedSubgraph)
	assert.Equal(t, before.mappings+float64(s.Mappings), after.mappings)
	assert.Equal(t, before.states+float64(s.States), after.states)
	assert.Equal(t, before.checks+float64(s.FeasibilityChecks), after.checks)

	// exhausted matcher adds nothing more
	_, ok = m.Next()
	assert.False(t, ok)
	assert.Equal(t, after, snapshotCounters(ModeInducedSubgraph))
}

func TestMetrics_ShortCircuitCountsSearchOnly(t *testing.T) {
	small := core.NewGraph()
	require.NoError(t, small.AddVertex("a"))
	big := core.NewGraph()
	_, err := big.AddEdge("x", "y", 0)
	require.NoError(t, err)

	before := snapshotCounters(ModeIsomorphism)
	m, err := NewMatcher(small, big, ModeIsomorphism)
	require.NoError(t, err)
	_, ok := m.Next()
	assert.False(t, ok)

	after := snapshotCounters(ModeIsomorphism)
	assert.Equal(t, before.searches+1, after.searches)
	assert.Equal(t, before.mappings, after.mappings)
	assert.Equal(t, before.checks, after.checks)
}
