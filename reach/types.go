// Package reach defines result types, configuration options, and error
// definitions for temporal reachability over a dynnet.DynamicNetwork.
package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tempo/dynnet"
)

// Sentinel errors for reachability queries.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed.
	ErrNilNetwork = errors.New("reach: network is nil")

	// ErrVertexNotFound is returned when a queried vertex lies outside [1..N].
	ErrVertexNotFound = errors.New("reach: vertex not found")

	// ErrPathNotTracked is returned by PathTo when the solver ran without
	// WithPathTracking and therefore recorded no predecessors.
	ErrPathNotTracked = errors.New("reach: solver ran without path tracking")

	// ErrBadPath is returned when a TemporalPath is constructed with
	// mismatched vertex/time/edge lengths or decreasing times.
	ErrBadPath = errors.New("reach: malformed temporal path")

	// ErrInconsistentState indicates a broken predecessor chain: the
	// arrival table says a vertex was reached but no link leads back to
	// the source. This is a solver bug, never a property of the input,
	// and is deliberately not recoverable.
	ErrInconsistentState = errors.New("reach: inconsistent solver state")
)

// Option configures a solver run via functional arguments.
type Option func(*options)

// options holds solver parameters.
type options struct {
	trackPaths bool
}

// defaultOptions returns the zero configuration: no predecessor tracking.
func defaultOptions() options { return options{} }

// WithPathTracking records a predecessor link for every relaxation so the
// result supports PathTo. Without it the solver skips the predecessor
// arena entirely and PathTo returns ErrPathNotTracked.
func WithPathTracking() Option {
	return func(o *options) { o.trackPaths = true }
}

// ArrivalTable maps each reached vertex to the earliest time it becomes
// reachable from the source. Absence is the "unreached" state — there is
// no infinity sentinel.
type ArrivalTable map[dynnet.VertexID]dynnet.TimePoint

// At returns the earliest arrival time for v, and whether v was reached.
func (t ArrivalTable) At(v dynnet.VertexID) (dynnet.TimePoint, bool) {
	tp, ok := t[v]

	return tp, ok
}

// Reached reports whether v was reached at all.
func (t ArrivalTable) Reached(v dynnet.VertexID) bool {
	_, ok := t[v]

	return ok
}

// DepartureTable maps each vertex to the latest time it can depart and
// still reach the target. Absence means the target cannot be reached
// from that vertex.
type DepartureTable map[dynnet.VertexID]dynnet.TimePoint

// At returns the latest departure time for v, and whether v can reach
// the target at all.
func (t DepartureTable) At(v dynnet.VertexID) (dynnet.TimePoint, bool) {
	tp, ok := t[v]

	return tp, ok
}

// Reached reports whether v can reach the target.
func (t DepartureTable) Reached(v dynnet.VertexID) bool {
	_, ok := t[v]

	return ok
}

// link is one entry of the predecessor arena: a flat slice indexed by
// VertexID instead of pointer-linked nodes.
type link struct {
	prev  dynnet.VertexID  // vertex the relaxation came from
	onset dynnet.TimePoint // activation onset used by the relaxation
	set   bool             // false ⇒ no predecessor recorded
}

// TemporalPath is a time-respecting walk: Vertices v0..vk, Times t1..tk
// (the activation onsets used for each hop), and Edges of length k in
// traversal orientation.
//
// Invariants, enforced by New: len(Vertices) == len(Edges)+1 ==
// len(Times)+1, and Times is non-decreasing. A single-vertex path with
// no edges and no times is the valid zero-length path.
type TemporalPath struct {
	Vertices []dynnet.VertexID
	Times    []dynnet.TimePoint
	Edges    []dynnet.EdgeKey
}

// NewPath validates and assembles a TemporalPath. All violations surface
// as ErrBadPath with context; validation happens before any use of the path.
func NewPath(vertices []dynnet.VertexID, times []dynnet.TimePoint, edges []dynnet.EdgeKey) (TemporalPath, error) {
	if len(vertices) == 0 {
		return TemporalPath{}, fmt.Errorf("%w: empty vertex sequence", ErrBadPath)
	}
	if len(vertices) != len(edges)+1 || len(vertices) != len(times)+1 {
		return TemporalPath{}, fmt.Errorf("%w: %d vertices, %d times, %d edges",
			ErrBadPath, len(vertices), len(times), len(edges))
	}
	var i int
	for i = 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return TemporalPath{}, fmt.Errorf("%w: times decrease at hop %d", ErrBadPath, i)
		}
	}

	return TemporalPath{Vertices: vertices, Times: times, Edges: edges}, nil
}

// Len returns the number of hops (edges) in the path.
func (p TemporalPath) Len() int { return len(p.Edges) }

// Final returns the time of the last hop. For the zero-length path there
// is no hop, hence (0, false).
func (p TemporalPath) Final() (dynnet.TimePoint, bool) {
	if len(p.Times) == 0 {
		return 0, false
	}

	return p.Times[len(p.Times)-1], true
}
