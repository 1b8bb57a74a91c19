// File: snapshot.go
// Role: Non-mutating static views of the dynamic network at an instant
//       (Extract) or over a window (ExtractRange, RuleAny/RuleAll).
// Determinism:
//   - Snapshot.Edges() returns keys sorted ascending by (From, To).
//   - Undirected snapshots store canonical keys (From ≤ To), so the same
//     undirected edge compares equal across snapshots regardless of the
//     orientation its spells were attached with.
// Concurrency:
//   - Read locks on the source; the result is a fresh immutable value.

package dynnet

import "sort"

// Snapshot is an immutable static view of the network: the set of edges
// deemed present at one instant or across one window. It supports the
// vertex/edge iteration and adjacency queries that snapshot-based
// measures (persistence, turnover, degree summaries) need.
type Snapshot struct {
	n        int
	directed bool
	edges    map[EdgeKey]struct{}
}

// Extract returns the instantaneous snapshot at time t: an edge is
// present iff at least one of its spells is active at t
// (Onset ≤ t < Terminus). Vertex spells are not consulted.
//
// The receiver is not mutated.
// Complexity: O(K log K + S). Concurrency: read lock on muEdge.
func (d *DynamicNetwork) Extract(t TimePoint) *Snapshot {
	snap := d.emptySnapshot()
	d.EachEdgeSpell(func(k EdgeKey, s Spell) {
		if s.Active(t) {
			snap.add(k)
		}
	})

	return snap
}

// ExtractRange returns the windowed snapshot over [t1, t2):
//
//	RuleAny — an edge is present iff some spell intersects the window.
//	RuleAll — an edge is present iff some spell covers the whole window.
//
// Returns ErrBadRange if t1 > t2, ErrBadRule for an unrecognized rule.
// Complexity: O(K log K + S). Concurrency: read lock on muEdge.
func (d *DynamicNetwork) ExtractRange(t1, t2 TimePoint, rule ExtractRule) (*Snapshot, error) {
	if t1 > t2 {
		return nil, ErrBadRange
	}

	// Resolve the rule to a spell predicate; the enum is closed, anything
	// else is a caller bug surfaced eagerly.
	var match func(Spell) bool
	switch rule {
	case RuleAny:
		match = func(s Spell) bool { return s.Intersects(t1, t2) }
	case RuleAll:
		match = func(s Spell) bool { return s.Covers(t1, t2) }
	default:
		return nil, ErrBadRule
	}

	snap := d.emptySnapshot()
	d.EachEdgeSpell(func(k EdgeKey, s Spell) {
		if match(s) {
			snap.add(k)
		}
	})

	return snap, nil
}

// emptySnapshot builds a Snapshot shell carrying the network's shape.
func (d *DynamicNetwork) emptySnapshot() *Snapshot {
	return &Snapshot{
		n:        d.n,
		directed: d.directed,
		edges:    make(map[EdgeKey]struct{}),
	}
}

// add records key k, canonicalizing the orientation for undirected views.
func (sn *Snapshot) add(k EdgeKey) {
	if !sn.directed {
		k = k.canonical()
	}
	sn.edges[k] = struct{}{}
}

// N returns the vertex count carried over from the source network.
// Complexity: O(1).
func (sn *Snapshot) N() int { return sn.n }

// Directed reports whether the source network was directed.
// Complexity: O(1).
func (sn *Snapshot) Directed() bool { return sn.directed }

// EdgeCount returns the number of distinct edges present.
// Complexity: O(1).
func (sn *Snapshot) EdgeCount() int { return len(sn.edges) }

// HasEdge reports whether the edge from → to is present. For undirected
// snapshots orientation is ignored.
// Complexity: O(1).
func (sn *Snapshot) HasEdge(from, to VertexID) bool {
	k := EdgeKey{From: from, To: to}
	if !sn.directed {
		k = k.canonical()
	}
	_, ok := sn.edges[k]

	return ok
}

// Edges returns all present edge keys sorted ascending by (From, To).
// Complexity: O(K log K).
func (sn *Snapshot) Edges() []EdgeKey {
	out := make([]EdgeKey, 0, len(sn.edges))
	for k := range sn.edges {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// Degree returns the number of present edges incident to v (for directed
// snapshots: in-degree plus out-degree; a self-loop counts once).
// Complexity: O(K).
func (sn *Snapshot) Degree(v VertexID) int {
	deg := 0
	for k := range sn.edges {
		if k.From == v || k.To == v {
			deg++
		}
	}

	return deg
}
