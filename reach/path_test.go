package reach_test

import (
	"testing"

	"github.com/katalvlaran/tempo/dynnet"
	"github.com/katalvlaran/tempo/reach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShortestPath_Chain pins the full reference reconstruction.
func TestShortestPath_Chain(t *testing.T) {
	net := chainNet(t)

	p, found, err := reach.ShortestPath(net, 1, 5, 0)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, []dynnet.VertexID{1, 2, 3, 4, 5}, p.Vertices)
	assert.Equal(t, []float64{0, 10, 30, 50}, p.Times)
	assert.Equal(t, []dynnet.EdgeKey{
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 3, To: 4},
		{From: 4, To: 5},
	}, p.Edges)
	assert.Equal(t, 4, p.Len())

	// The path's final time equals the temporal distance.
	final, ok := p.Final()
	require.True(t, ok)
	d, ok, err := reach.TemporalDistance(net, 1, 5, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, d, final)
}

// TestShortestPath_NoPath verifies "no path" is a value, not an error,
// and agrees with TemporalDistance.
func TestShortestPath_NoPath(t *testing.T) {
	net := chainNet(t)

	p, found, err := reach.ShortestPath(net, 1, 5, 90)
	require.NoError(t, err, "unreachability must not surface as an error")
	assert.False(t, found)
	assert.Empty(t, p.Vertices)

	_, ok, err := reach.TemporalDistance(net, 1, 5, 90)
	require.NoError(t, err)
	assert.Equal(t, ok, found, "ShortestPath yields no path iff the distance is unreachable")
}

// TestShortestPath_Trivial covers s == r: a single-vertex, zero-edge path.
func TestShortestPath_Trivial(t *testing.T) {
	net := chainNet(t)

	p, found, err := reach.ShortestPath(net, 3, 3, 25)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []dynnet.VertexID{3}, p.Vertices)
	assert.Empty(t, p.Times)
	assert.Empty(t, p.Edges)
	assert.Equal(t, 0, p.Len())

	_, ok := p.Final()
	assert.False(t, ok, "a zero-length path has no hop time")
}

// TestPathTo_Untracked ensures PathTo without tracking fails eagerly.
func TestPathTo_Untracked(t *testing.T) {
	net := chainNet(t)
	r, err := reach.EarliestArrival(net, 1, 0)
	require.NoError(t, err)

	_, _, err = r.PathTo(5)
	assert.ErrorIs(t, err, reach.ErrPathNotTracked)
}

// TestPathTo_BadDestination checks destination range validation.
func TestPathTo_BadDestination(t *testing.T) {
	net := chainNet(t)
	r, err := reach.EarliestArrival(net, 1, 0, reach.WithPathTracking())
	require.NoError(t, err)

	_, _, err = r.PathTo(0)
	assert.ErrorIs(t, err, reach.ErrVertexNotFound)
	_, _, err = r.PathTo(99)
	assert.ErrorIs(t, err, reach.ErrVertexNotFound)
}

// TestPathTo_NonDecreasingTimes checks the path invariant on a network
// with branches and waiting.
func TestPathTo_NonDecreasingTimes(t *testing.T) {
	net, err := dynnet.New(4)
	require.NoError(t, err)
	require.NoError(t, net.AddEdgeSpell(1, 2, 0, 100))
	require.NoError(t, net.AddEdgeSpell(2, 3, 5, 100))
	require.NoError(t, net.AddEdgeSpell(1, 3, 50, 100))
	require.NoError(t, net.AddEdgeSpell(3, 4, 60, 100))

	p, found, err := reach.ShortestPath(net, 1, 4, 0)
	require.NoError(t, err)
	require.True(t, found)

	require.Equal(t, len(p.Vertices), len(p.Edges)+1)
	require.Equal(t, len(p.Vertices), len(p.Times)+1)
	for i := 1; i < len(p.Times); i++ {
		assert.LessOrEqual(t, p.Times[i-1], p.Times[i], "times must be non-decreasing")
	}
}

// TestNewTemporalPath_Validation covers the malformed-path error class.
func TestNewTemporalPath_Validation(t *testing.T) {
	// Empty vertex sequence.
	_, err := reach.NewPath(nil, nil, nil)
	assert.ErrorIs(t, err, reach.ErrBadPath)

	// Mismatched lengths.
	_, err = reach.NewPath(
		[]dynnet.VertexID{1, 2},
		[]float64{0, 1},
		[]dynnet.EdgeKey{{From: 1, To: 2}},
	)
	assert.ErrorIs(t, err, reach.ErrBadPath)

	// Decreasing times.
	_, err = reach.NewPath(
		[]dynnet.VertexID{1, 2, 3},
		[]float64{5, 3},
		[]dynnet.EdgeKey{{From: 1, To: 2}, {From: 2, To: 3}},
	)
	assert.ErrorIs(t, err, reach.ErrBadPath)

	// A well-formed path, including equal consecutive times.
	p, err := reach.NewPath(
		[]dynnet.VertexID{1, 2, 3},
		[]float64{4, 4},
		[]dynnet.EdgeKey{{From: 1, To: 2}, {From: 2, To: 3}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
}

// TestPathTo_DeterministicTieBreak verifies that equal-onset alternatives
// resolve by edge-key order, so the reconstructed path is reproducible.
func TestPathTo_DeterministicTieBreak(t *testing.T) {
	// Two equally early routes 1→2→4 and 1→3→4; all spells share onset 0.
	build := func() *dynnet.DynamicNetwork {
		net, err := dynnet.New(4)
		require.NoError(t, err)
		require.NoError(t, net.AddEdgeSpell(1, 3, 0, 10))
		require.NoError(t, net.AddEdgeSpell(1, 2, 0, 10))
		require.NoError(t, net.AddEdgeSpell(3, 4, 0, 10))
		require.NoError(t, net.AddEdgeSpell(2, 4, 0, 10))
		return net
	}

	first, found, err := reach.ShortestPath(build(), 1, 4, 0)
	require.NoError(t, err)
	require.True(t, found)

	for i := 0; i < 10; i++ {
		again, foundAgain, errAgain := reach.ShortestPath(build(), 1, 4, 0)
		require.NoError(t, errAgain)
		require.True(t, foundAgain)
		assert.Equal(t, first.Vertices, again.Vertices, "tie-break must be stable across runs")
	}

	// Key order fixes the winner: (1,2) relaxes vertex 2 before (1,3)
	// reaches 3, and (2,4) claims vertex 4 before (3,4) is seen.
	assert.Equal(t, []dynnet.VertexID{1, 2, 4}, first.Vertices)
}
