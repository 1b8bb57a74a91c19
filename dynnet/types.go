// Package dynnet defines the central DynamicNetwork, Spell, and EdgeKey types,
// and provides thread-safe primitives for building and querying dynamic
// (time-varying) networks.
//
// All dynnet APIs use separate sync.RWMutex locks internally (muVert for
// vertex spells, muEdge for edge spells), so you can safely mutate your
// networks across goroutines with minimal contention.
//
// This file declares TimePoint, VertexID, Spell, EdgeKey, Option,
// sentinel errors, and the snapshot extraction rules.
//
// Errors:
//
//	ErrBadVertexCount - negative vertex count passed to New.
//	ErrVertexRange    - vertex ID outside [1..N].
//	ErrBadSpell       - spell with onset > terminus.
//	ErrBadObserved    - observation period with start > end.
//	ErrLoopNotAllowed - self-loop spell when loops are disabled.
//	ErrBadRule        - unrecognized snapshot extraction rule.
//	ErrBadRange       - extraction range with t1 > t2.
package dynnet

import "errors"

// Sentinel errors for dynamic network operations.
var (
	// ErrBadVertexCount indicates that New was called with a negative vertex count.
	ErrBadVertexCount = errors.New("dynnet: vertex count must be non-negative")

	// ErrVertexRange indicates an operation referenced a vertex outside [1..N].
	ErrVertexRange = errors.New("dynnet: vertex ID out of range")

	// ErrBadSpell indicates a spell whose onset exceeds its terminus.
	ErrBadSpell = errors.New("dynnet: spell onset must not exceed terminus")

	// ErrBadObserved indicates an observation period whose start exceeds its end.
	ErrBadObserved = errors.New("dynnet: observation start must not exceed end")

	// ErrLoopNotAllowed indicates a self-loop spell was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("dynnet: self-loop not allowed")

	// ErrBadRule indicates an unrecognized snapshot extraction rule.
	ErrBadRule = errors.New("dynnet: unrecognized extraction rule")

	// ErrBadRange indicates an extraction range whose start exceeds its end.
	ErrBadRange = errors.New("dynnet: extraction range start must not exceed end")
)

// TimePoint is a point on the network's time axis. It accommodates both
// integer ticks and real-valued clocks. There is no "infinity" sentinel:
// APIs that may fail to produce a time return an explicit (TimePoint, bool)
// pair, where false means "no such time".
type TimePoint = float64

// VertexID identifies a vertex. Valid IDs lie in [1..N], fixed when the
// network is constructed.
type VertexID = int

// Spell is one continuous activation interval [Onset, Terminus) of an edge
// or vertex. Onset is inclusive, Terminus exclusive; Onset ≤ Terminus.
// A zero-duration spell (Onset == Terminus) is legal and never active.
type Spell struct {
	// Onset is the inclusive activation start.
	Onset TimePoint

	// Terminus is the exclusive activation end.
	Terminus TimePoint
}

// Duration returns Terminus − Onset.
func (s Spell) Duration() float64 { return s.Terminus - s.Onset }

// Active reports whether the spell is active at instant t,
// i.e. Onset ≤ t < Terminus.
func (s Spell) Active(t TimePoint) bool { return s.Onset <= t && t < s.Terminus }

// Intersects reports whether the spell overlaps the half-open range [t1, t2).
func (s Spell) Intersects(t1, t2 TimePoint) bool { return s.Onset < t2 && s.Terminus > t1 }

// Covers reports whether the spell spans the entire half-open range [t1, t2).
func (s Spell) Covers(t1, t2 TimePoint) bool { return s.Onset <= t1 && s.Terminus >= t2 }

// EdgeKey is an ordered (source, target) vertex pair identifying an edge's
// spell list. For undirected networks traversal and snapshot comparison
// treat the key symmetrically regardless of its stored orientation.
type EdgeKey struct {
	// From is the source vertex ID.
	From VertexID

	// To is the target vertex ID.
	To VertexID
}

// less orders keys lexicographically by (From, To). All deterministic
// edge-key enumerations in this package sort with it.
func (k EdgeKey) less(o EdgeKey) bool {
	if k.From != o.From {
		return k.From < o.From
	}

	return k.To < o.To
}

// canonical returns the key with endpoints swapped into ascending order.
// Snapshots of undirected networks store canonical keys so that (i,j) and
// (j,i) spells land on the same static edge.
func (k EdgeKey) canonical() EdgeKey {
	if k.To < k.From {
		return EdgeKey{From: k.To, To: k.From}
	}

	return k
}

// ExtractRule selects how ExtractRange decides whether a spell makes an
// edge present in a windowed snapshot.
//
//	RuleAny — the spell intersects the window [t1, t2) at any point.
//	RuleAll — the spell covers the entire window [t1, t2).
type ExtractRule int

const (
	// RuleAny includes an edge if any of its spells intersects the window.
	RuleAny ExtractRule = iota

	// RuleAll includes an edge only if some spell covers the whole window.
	RuleAll
)

// Option configures a DynamicNetwork at construction time.
// An invalid Option (e.g. inverted observation bounds) is recorded
// internally and surfaced as an error by New.
type Option func(*config)

// config collects construction-time settings before the network exists.
type config struct {
	directed   bool
	allowLoops bool
	obsPinned  bool
	obsStart   TimePoint
	obsEnd     TimePoint

	// internal error recorded during option parsing
	err error
}

// WithDirected makes every edge spell one-way (From → To).
// By default the network is undirected.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithLoops permits self-loop spells (edges from a vertex to itself).
func WithLoops() Option {
	return func(c *config) { c.allowLoops = true }
}

// WithObserved pins the observation period to [start, end]. Without this
// option the period grows to the span of the attached spells.
// start > end is invalid and surfaces as ErrBadObserved from New.
func WithObserved(start, end TimePoint) Option {
	return func(c *config) {
		if start > end {
			c.err = ErrBadObserved
			return
		}
		c.obsPinned = true
		c.obsStart = start
		c.obsEnd = end
	}
}
