package reach_test

import (
	"testing"

	"github.com/katalvlaran/tempo/dynnet"
	"github.com/katalvlaran/tempo/reach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLatestDeparture_Errors verifies the eager validation ladder.
func TestLatestDeparture_Errors(t *testing.T) {
	_, err := reach.LatestDeparture(nil, 1, 0)
	assert.ErrorIs(t, err, reach.ErrNilNetwork)

	net := chainNet(t)
	_, err = reach.LatestDeparture(net, 0, 0)
	assert.ErrorIs(t, err, reach.ErrVertexNotFound)
	_, err = reach.LatestDeparture(net, 6, 0)
	assert.ErrorIs(t, err, reach.ErrVertexNotFound)
}

// TestLatestDeparture_Chain pins the reverse-time relaxation on the
// reference chain with the full period as the boundary: each vertex can
// depart as late as the terminus of its outgoing spell.
func TestLatestDeparture_Chain(t *testing.T) {
	net := chainNet(t)

	d, err := reach.LatestDeparture(net, 5, 80)
	require.NoError(t, err)

	wantDepartures := map[dynnet.VertexID]float64{1: 20, 2: 40, 3: 60, 4: 80, 5: 80}
	for v, want := range wantDepartures {
		got, ok := d.DepartureOf(v)
		require.True(t, ok, "vertex %d must reach the target", v)
		assert.Equal(t, want, got, "latest departure from vertex %d", v)
	}
	assert.Equal(t, []dynnet.VertexID{1, 2, 3, 4, 5}, d.BackwardSet())
}

// TestLatestDeparture_TargetAlwaysPresent checks the backward analog of
// "the source always reaches itself", including on an empty network.
func TestLatestDeparture_TargetAlwaysPresent(t *testing.T) {
	net, err := dynnet.New(3)
	require.NoError(t, err)

	d, err := reach.LatestDeparture(net, 2, 55)
	require.NoError(t, err)
	assert.Equal(t, []dynnet.VertexID{2}, d.BackwardSet())

	got, ok := d.DepartureOf(2)
	require.True(t, ok)
	assert.Equal(t, 55.0, got, "the target departs at the boundary itself")
	assert.Equal(t, 2, d.Target())
	assert.Equal(t, 55.0, d.End())
}

// TestLatestDeparture_TerminusFilter verifies that spells ending after
// the boundary are excluded: with end=50, no spell of the chain beyond
// (1,2) and (2,3) qualifies, and neither connects to vertex 5.
func TestLatestDeparture_TerminusFilter(t *testing.T) {
	net := chainNet(t)

	d, err := reach.LatestDeparture(net, 5, 50)
	require.NoError(t, err)
	assert.Equal(t, []dynnet.VertexID{5}, d.BackwardSet(),
		"(4,5)@[50,80) ends at 80 > 50, so nothing feeds the target")
}

// TestLatestDeparture_Directed verifies orientation is honored in reverse.
func TestLatestDeparture_Directed(t *testing.T) {
	net, err := dynnet.New(3, dynnet.WithDirected())
	require.NoError(t, err)
	require.NoError(t, net.AddEdgeSpell(1, 2, 0, 10))
	require.NoError(t, net.AddEdgeSpell(3, 2, 0, 10))

	set, err := reach.BackwardReachable(net, 2, 100)
	require.NoError(t, err)
	assert.Equal(t, []dynnet.VertexID{1, 2, 3}, set, "both 1 and 3 point into 2")

	set, err = reach.BackwardReachable(net, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, []dynnet.VertexID{1}, set, "no directed edge enters 1")
}

// TestLatestDeparture_BestTerminusWins ensures a later-ending parallel
// spell improves the departure label.
func TestLatestDeparture_BestTerminusWins(t *testing.T) {
	net, err := dynnet.New(2)
	require.NoError(t, err)
	require.NoError(t, net.AddEdgeSpell(1, 2, 0, 10))
	require.NoError(t, net.AddEdgeSpell(1, 2, 30, 60))

	d, err := reach.LatestDeparture(net, 2, 100)
	require.NoError(t, err)
	got, ok := d.DepartureOf(1)
	require.True(t, ok)
	assert.Equal(t, 60.0, got, "the later spell dominates")
}
