// File: network.go
// Role: DynamicNetwork construction and spell attachment:
//       New/AddEdgeSpell/AddVertexSpell.
// Determinism:
//   - Spell lists preserve attachment order; no merging or reordering.
// Concurrency:
//   - Mutations under muEdge / muVert write locks.

package dynnet

import "sync"

// DynamicNetwork is the in-memory store for a time-varying network:
// a fixed vertex set [1..N] plus activation spells attached to edge keys
// and to vertices.
//
// Spells are additive: attaching a spell never merges it with, or
// reorders, previously attached spells on the same key. The measure
// engines (reach, stability, contacts) only read the network; they rely
// on the caller not mutating it while queries are in flight.
type DynamicNetwork struct {
	muVert sync.RWMutex // guards vertexSpells and observation bounds
	muEdge sync.RWMutex // guards edgeSpells and spell count

	// Configuration flags, fixed at construction.
	n          int  // number of vertices
	directed   bool // edge spells are one-way when true
	allowLoops bool // allow self-loop edge spells

	// Observation period [obsStart, obsEnd]. When not pinned by
	// WithObserved it grows to the span of the attached spells.
	obsPinned bool
	obsSeen   bool // at least one spell has widened the bounds
	obsStart  TimePoint
	obsEnd    TimePoint

	// Storage.
	edgeSpells   map[EdgeKey][]Spell  // edge key → activation spells, in attachment order
	vertexSpells map[VertexID][]Spell // vertex ID → activation spells, in attachment order
	spellCount   int                  // total number of edge spells
}

// New creates an empty DynamicNetwork over vertices [1..n] with the given
// options. By default the network is undirected, disallows self-loops,
// and derives its observation period from the attached spells.
// Complexity: O(1).
func New(n int, opts ...Option) (*DynamicNetwork, error) {
	// 1) Validate vertex count.
	if n < 0 {
		return nil, ErrBadVertexCount
	}

	// 2) Build configuration and catch any invalid option immediately.
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Assemble the network.
	return &DynamicNetwork{
		n:            n,
		directed:     cfg.directed,
		allowLoops:   cfg.allowLoops,
		obsPinned:    cfg.obsPinned,
		obsStart:     cfg.obsStart,
		obsEnd:       cfg.obsEnd,
		edgeSpells:   make(map[EdgeKey][]Spell),
		vertexSpells: make(map[VertexID][]Spell),
	}, nil
}

// AddEdgeSpell attaches the activation spell [onset, terminus) to the edge
// (from, to).
//
// Steps:
//  1. Validate both endpoints against [1..N] (ErrVertexRange).
//  2. Enforce the loop policy (ErrLoopNotAllowed).
//  3. Validate onset ≤ terminus (ErrBadSpell).
//  4. Append under muEdge; widen the observation period under muVert.
//
// Spells on the same key are kept as-is: overlapping spells are legal and
// remain distinct (duration measures count them additively).
// Complexity: O(1) amortized.
func (d *DynamicNetwork) AddEdgeSpell(from, to VertexID, onset, terminus TimePoint) error {
	// 1) Input validation, eagerly and in a fixed order.
	if !d.inRange(from) || !d.inRange(to) {
		return ErrVertexRange
	}
	if from == to && !d.allowLoops {
		return ErrLoopNotAllowed
	}
	if onset > terminus {
		return ErrBadSpell
	}

	// 2) Append the spell under the edge lock.
	k := EdgeKey{From: from, To: to}
	d.muEdge.Lock()
	d.edgeSpells[k] = append(d.edgeSpells[k], Spell{Onset: onset, Terminus: terminus})
	d.spellCount++
	d.muEdge.Unlock()

	// 3) Widen observation bounds (no-op when pinned).
	d.widenObserved(onset, terminus)

	return nil
}

// AddVertexSpell attaches the activity spell [onset, terminus) to vertex v.
// Vertex spells feed per-vertex duration measures; they do not gate edge
// traversal or snapshot extraction.
// Complexity: O(1) amortized.
func (d *DynamicNetwork) AddVertexSpell(v VertexID, onset, terminus TimePoint) error {
	if !d.inRange(v) {
		return ErrVertexRange
	}
	if onset > terminus {
		return ErrBadSpell
	}

	d.muVert.Lock()
	d.vertexSpells[v] = append(d.vertexSpells[v], Spell{Onset: onset, Terminus: terminus})
	d.muVert.Unlock()

	d.widenObserved(onset, terminus)

	return nil
}

// inRange reports whether v is a valid vertex ID for this network.
func (d *DynamicNetwork) inRange(v VertexID) bool { return v >= 1 && v <= d.n }

// widenObserved grows the derived observation period to cover
// [onset, terminus]. Pinned periods (WithObserved) are never touched.
func (d *DynamicNetwork) widenObserved(onset, terminus TimePoint) {
	if d.obsPinned {
		return
	}
	d.muVert.Lock()
	defer d.muVert.Unlock()
	if !d.obsSeen {
		d.obsSeen = true
		d.obsStart = onset
		d.obsEnd = terminus

		return
	}
	if onset < d.obsStart {
		d.obsStart = onset
	}
	if terminus > d.obsEnd {
		d.obsEnd = terminus
	}
}
