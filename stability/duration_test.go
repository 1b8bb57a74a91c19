package stability_test

import (
	"testing"

	"github.com/katalvlaran/tempo/dynnet"
	"github.com/katalvlaran/tempo/stability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// durNet builds a small network with known per-key totals:
//
//	(1,2): spells [0,20) and [40,60)  → 40
//	(2,3): spell  [10,40)             → 30
//	(3,4): spell  [0,10)              → 10
func durNet(t *testing.T) *dynnet.DynamicNetwork {
	t.Helper()
	net, err := dynnet.New(4)
	require.NoError(t, err)
	require.NoError(t, net.AddEdgeSpell(1, 2, 0, 20))
	require.NoError(t, net.AddEdgeSpell(1, 2, 40, 60))
	require.NoError(t, net.AddEdgeSpell(2, 3, 10, 40))
	require.NoError(t, net.AddEdgeSpell(3, 4, 0, 10))

	return net
}

// TestEdgeDurations_All pins the per-key mapping, including the two-spell
// key summing to 40.
func TestEdgeDurations_All(t *testing.T) {
	_, perKey, err := stability.EdgeDurations(durNet(t), stability.AggAll)
	require.NoError(t, err)

	want := map[dynnet.EdgeKey]float64{
		{From: 1, To: 2}: 40,
		{From: 2, To: 3}: 30,
		{From: 3, To: 4}: 10,
	}
	assert.Equal(t, want, perKey)
}

// TestEdgeDurations_Scalars covers mean, median, and total, and checks
// total = sum of the AggAll values.
func TestEdgeDurations_Scalars(t *testing.T) {
	net := durNet(t)

	total, _, err := stability.EdgeDurations(net, stability.AggTotal)
	require.NoError(t, err)
	assert.Equal(t, 80.0, total)

	m, _, err := stability.EdgeDurations(net, stability.AggMean)
	require.NoError(t, err)
	assert.InDelta(t, 80.0/3, m, 1e-12)

	med, _, err := stability.EdgeDurations(net, stability.AggMedian)
	require.NoError(t, err)
	assert.Equal(t, 30.0, med, "odd count: the middle per-key total")

	// total equals the sum over the full mapping.
	_, perKey, err := stability.EdgeDurations(net, stability.AggAll)
	require.NoError(t, err)
	var sum float64
	for _, d := range perKey {
		sum += d
	}
	assert.Equal(t, total, sum)
}

// TestEdgeDurations_MedianEven checks the even-count median.
func TestEdgeDurations_MedianEven(t *testing.T) {
	net, err := dynnet.New(5)
	require.NoError(t, err)
	require.NoError(t, net.AddEdgeSpell(1, 2, 0, 10)) // 10
	require.NoError(t, net.AddEdgeSpell(2, 3, 0, 20)) // 20
	require.NoError(t, net.AddEdgeSpell(3, 4, 0, 40)) // 40
	require.NoError(t, net.AddEdgeSpell(4, 5, 0, 80)) // 80

	med, _, err := stability.EdgeDurations(net, stability.AggMedian)
	require.NoError(t, err)
	assert.Equal(t, 30.0, med, "even count averages the two middles")
}

// TestEdgeDurations_OverlapDoubleCounts documents the additive policy:
// overlapping spells on one key are not unioned.
func TestEdgeDurations_OverlapDoubleCounts(t *testing.T) {
	net, err := dynnet.New(2)
	require.NoError(t, err)
	require.NoError(t, net.AddEdgeSpell(1, 2, 0, 10))
	require.NoError(t, net.AddEdgeSpell(1, 2, 5, 15))

	total, _, err := stability.EdgeDurations(net, stability.AggTotal)
	require.NoError(t, err)
	assert.Equal(t, 20.0, total, "overlap [5,10) is counted twice by design")
}

// TestEdgeDurations_DegenerateAndErrors covers empty input, nil network,
// and the closed-enum guard.
func TestEdgeDurations_DegenerateAndErrors(t *testing.T) {
	empty, err := dynnet.New(3)
	require.NoError(t, err)

	for _, mode := range []stability.AggMode{stability.AggMean, stability.AggMedian, stability.AggTotal} {
		v, _, modeErr := stability.EdgeDurations(empty, mode)
		require.NoError(t, modeErr)
		assert.Equal(t, 0.0, v, "scalar modes on empty input yield 0")
	}
	_, perKey, err := stability.EdgeDurations(empty, stability.AggAll)
	require.NoError(t, err)
	assert.Empty(t, perKey, "AggAll on empty input yields an empty mapping")

	_, _, err = stability.EdgeDurations(nil, stability.AggTotal)
	assert.ErrorIs(t, err, stability.ErrNilNetwork)

	_, _, err = stability.EdgeDurations(empty, stability.AggMode(42))
	assert.ErrorIs(t, err, stability.ErrUnknownMode)
}

// TestVertexDurations covers the vertex analog.
func TestVertexDurations(t *testing.T) {
	net, err := dynnet.New(3)
	require.NoError(t, err)
	require.NoError(t, net.AddVertexSpell(1, 0, 10))
	require.NoError(t, net.AddVertexSpell(1, 20, 30))
	require.NoError(t, net.AddVertexSpell(2, 0, 40))

	_, perVertex, err := stability.VertexDurations(net, stability.AggAll)
	require.NoError(t, err)
	assert.Equal(t, map[dynnet.VertexID]float64{1: 20, 2: 40}, perVertex,
		"vertex 3 has no spells and is omitted")

	total, _, err := stability.VertexDurations(net, stability.AggTotal)
	require.NoError(t, err)
	assert.Equal(t, 60.0, total)
}

// TestSpellDurations checks the raw per-spell sample and its order.
func TestSpellDurations(t *testing.T) {
	sample, err := stability.SpellDurations(durNet(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 20, 30, 10}, sample,
		"one entry per spell, key-major deterministic order")

	_, err = stability.SpellDurations(nil)
	assert.ErrorIs(t, err, stability.ErrNilNetwork)
}
