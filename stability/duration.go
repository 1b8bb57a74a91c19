// File: duration.go
// Role: Duration aggregation — additive per-key spell duration totals for
//       edges and vertices, with mean/median/total/all reporting.
// Determinism:
//   - Per-key enumeration follows dynnet's sorted orders; SpellDurations
//     preserves it, so samples are reproducible.

package stability

import (
	"sort"

	"github.com/katalvlaran/tempo/dynnet"
)

// EdgeDurations aggregates, per distinct edge key, the summed duration
// Σ (terminus − onset) over all of the key's spells.
//
// The summation is additive, not interval-union: overlapping spells on
// the same key double-count the overlapped time. That matches the
// published metric semantics and is a caller-data-quality assumption;
// it is deliberately not "corrected" here.
//
// Returns (scalar, perKey, err) shaped by mode:
//
//   - AggMean / AggMedian / AggTotal → (value, nil, nil).
//   - AggAll                         → (0, full mapping, nil).
//   - anything else                  → (0, nil, ErrUnknownMode), eagerly.
//
// Empty input yields 0 for scalar modes and an empty mapping for AggAll.
// Complexity: O(K log K + S).
func EdgeDurations(net *dynnet.DynamicNetwork, mode AggMode) (float64, map[dynnet.EdgeKey]float64, error) {
	if net == nil {
		return 0, nil, ErrNilNetwork
	}
	if err := checkMode(mode); err != nil {
		return 0, nil, err
	}

	// Accumulate per-key totals in deterministic key order.
	keys := net.EdgeKeys()
	perKey := make(map[dynnet.EdgeKey]float64, len(keys))
	totals := make([]float64, 0, len(keys))
	var k dynnet.EdgeKey
	var s dynnet.Spell
	var sum float64
	for _, k = range keys {
		sum = 0
		for _, s = range net.EdgeSpells(k) {
			sum += s.Duration()
		}
		perKey[k] = sum
		totals = append(totals, sum)
	}

	if mode == AggAll {
		return 0, perKey, nil
	}

	return aggregate(totals, mode), nil, nil
}

// VertexDurations is the vertex analog of EdgeDurations: per vertex, the
// summed duration of its activity spells. Vertices without spells do not
// appear in the AggAll mapping and contribute nothing to scalar modes.
// Complexity: O(V + S).
func VertexDurations(net *dynnet.DynamicNetwork, mode AggMode) (float64, map[dynnet.VertexID]float64, error) {
	if net == nil {
		return 0, nil, ErrNilNetwork
	}
	if err := checkMode(mode); err != nil {
		return 0, nil, err
	}

	perVertex := make(map[dynnet.VertexID]float64)
	var totals []float64
	var v dynnet.VertexID
	var s dynnet.Spell
	var sum float64
	for v = 1; v <= net.N(); v++ {
		spells, err := net.VertexSpells(v)
		if err != nil {
			return 0, nil, err
		}
		if len(spells) == 0 {
			continue
		}
		sum = 0
		for _, s = range spells {
			sum += s.Duration()
		}
		perVertex[v] = sum
		totals = append(totals, sum)
	}

	if mode == AggAll {
		return 0, perVertex, nil
	}

	return aggregate(totals, mode), nil, nil
}

// SpellDurations returns the raw duration of every edge spell, one entry
// per spell in deterministic enumeration order. This is the sample the
// decay estimators consume — per-spell, not the per-key aggregate.
// Complexity: O(K log K + S).
func SpellDurations(net *dynnet.DynamicNetwork) ([]float64, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	out := make([]float64, 0, net.SpellCount())
	net.EachEdgeSpell(func(_ dynnet.EdgeKey, s dynnet.Spell) {
		out = append(out, s.Duration())
	})

	return out, nil
}

// checkMode rejects values outside the closed AggMode enumeration.
func checkMode(mode AggMode) error {
	switch mode {
	case AggMean, AggMedian, AggTotal, AggAll:
		return nil
	default:
		return ErrUnknownMode
	}
}

// aggregate folds per-key totals into one scalar. mode has been validated;
// AggAll never reaches here.
func aggregate(totals []float64, mode AggMode) float64 {
	if len(totals) == 0 {
		return 0
	}
	switch mode {
	case AggMean:
		return mean(totals)
	case AggMedian:
		return median(totals)
	default: // AggTotal
		var sum float64
		for _, d := range totals {
			sum += d
		}

		return sum
	}
}

// mean returns the arithmetic mean of a non-empty sample.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// median returns the standard even/odd median of a non-empty sample.
// The input is not mutated.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
