// File: methods.go
// Role: Read-only accessors: N/Directed/Looped/Observed/EdgeKeys/
//       EdgeSpells/VertexSpells/SpellCount/EachEdgeSpell.
// Determinism:
//   - EdgeKeys() returns keys sorted ascending by (From, To).
//   - EachEdgeSpell visits keys in that order, spells in attachment order.
// Concurrency:
//   - Read queries under the matching read lock.

package dynnet

import "sort"

// N returns the number of vertices. Vertex IDs are [1..N].
// Complexity: O(1).
func (d *DynamicNetwork) N() int { return d.n }

// Directed reports whether edge spells are one-way.
// Complexity: O(1).
func (d *DynamicNetwork) Directed() bool { return d.directed }

// Looped reports whether self-loop spells are permitted.
// Complexity: O(1).
func (d *DynamicNetwork) Looped() bool { return d.allowLoops }

// Observed returns the observation period [start, end]. For an unpinned
// network with no spells it is [0, 0].
// Complexity: O(1). Concurrency: read lock on muVert.
func (d *DynamicNetwork) Observed() (start, end TimePoint) {
	d.muVert.RLock()
	defer d.muVert.RUnlock()

	return d.obsStart, d.obsEnd
}

// SpellCount returns the total number of edge spells attached.
// Complexity: O(1). Concurrency: read lock on muEdge.
func (d *DynamicNetwork) SpellCount() int {
	d.muEdge.RLock()
	defer d.muEdge.RUnlock()

	return d.spellCount
}

// EdgeKeys returns all edge keys carrying at least one spell, sorted
// ascending by (From, To). Rely on this order for reproducible runs.
// Complexity: O(K log K), K = number of distinct keys.
// Concurrency: read lock on muEdge.
func (d *DynamicNetwork) EdgeKeys() []EdgeKey {
	d.muEdge.RLock()
	out := make([]EdgeKey, 0, len(d.edgeSpells))
	for k := range d.edgeSpells {
		out = append(out, k)
	}
	d.muEdge.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// EdgeSpells returns a copy of the spells attached to key k, in attachment
// order. A key without spells yields an empty slice.
// Complexity: O(S), S = spells on the key. Concurrency: read lock on muEdge.
func (d *DynamicNetwork) EdgeSpells(k EdgeKey) []Spell {
	d.muEdge.RLock()
	defer d.muEdge.RUnlock()

	return append([]Spell(nil), d.edgeSpells[k]...)
}

// VertexSpells returns a copy of the activity spells attached to vertex v,
// in attachment order. ErrVertexRange if v is outside [1..N].
// Complexity: O(S). Concurrency: read lock on muVert.
func (d *DynamicNetwork) VertexSpells(v VertexID) ([]Spell, error) {
	if !d.inRange(v) {
		return nil, ErrVertexRange
	}

	d.muVert.RLock()
	defer d.muVert.RUnlock()

	return append([]Spell(nil), d.vertexSpells[v]...), nil
}

// EachEdgeSpell calls fn for every edge spell: keys ascending by
// (From, To), spells in attachment order. This is the deterministic
// enumeration every measure engine builds on — equal-timestamp events
// always materialize in the same sequence.
//
// fn must not mutate the network (the edge read lock is held throughout).
// Complexity: O(K log K + S) for K keys and S spells.
func (d *DynamicNetwork) EachEdgeSpell(fn func(k EdgeKey, s Spell)) {
	keys := d.EdgeKeys()

	d.muEdge.RLock()
	defer d.muEdge.RUnlock()
	var k EdgeKey
	var s Spell
	for _, k = range keys {
		for _, s = range d.edgeSpells[k] {
			fn(k, s)
		}
	}
}
