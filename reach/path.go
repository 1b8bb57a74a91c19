// File: path.go
// Role: Temporal path reconstruction — walking the predecessor arena of a
//       tracked EarliestArrival run into a concrete TemporalPath.

package reach

import (
	"fmt"

	"github.com/katalvlaran/tempo/dynnet"
)

// PathTo reconstructs the time-respecting path from the result's source
// to dest.
//
// Outcomes:
//
//   - dest unreached          → (zero path, false, nil); a normal negative
//     outcome, never an error.
//   - dest == source          → single-vertex, zero-edge path.
//   - otherwise               → the path whose final time equals
//     Distance(dest); times are non-decreasing.
//
// Errors:
//
//   - ErrPathNotTracked       if the run lacked WithPathTracking.
//   - ErrVertexNotFound       if dest lies outside [1..N].
//   - ErrInconsistentState    if the predecessor chain is broken — the
//     arrival table and the arena disagree. That is a solver bug and is
//     never silently truncated or skipped.
func (r *Result) PathTo(dest dynnet.VertexID) (TemporalPath, bool, error) {
	// 1) Eager validation before touching any state.
	if r.pred == nil {
		return TemporalPath{}, false, ErrPathNotTracked
	}
	if dest < 1 || dest > r.n {
		return TemporalPath{}, false, fmt.Errorf("%w: destination %d of [1..%d]", ErrVertexNotFound, dest, r.n)
	}

	// 2) Trivial query: the zero-length path is valid.
	if dest == r.source {
		p, err := NewPath([]dynnet.VertexID{r.source}, nil, nil)

		return p, true, err
	}

	// 3) Unreached destination: explicit "no path" value.
	if !r.arrival.Reached(dest) {
		return TemporalPath{}, false, nil
	}

	// 4) Walk the arena backward from dest, collecting (vertex, time, edge)
	//    triples in reverse. The chain length is bounded by the vertex
	//    count; exceeding it means a cycle in the arena — same fault class
	//    as a missing link.
	vertices := make([]dynnet.VertexID, 0, r.n)
	times := make([]dynnet.TimePoint, 0, r.n)
	edges := make([]dynnet.EdgeKey, 0, r.n)

	cur := dest
	var steps int
	var lk link
	for cur != r.source {
		if steps++; steps > r.n {
			return TemporalPath{}, false, fmt.Errorf("%w: predecessor cycle at vertex %d", ErrInconsistentState, cur)
		}
		lk = r.pred[cur]
		if !lk.set {
			return TemporalPath{}, false, fmt.Errorf("%w: no predecessor recorded for vertex %d", ErrInconsistentState, cur)
		}
		vertices = append(vertices, cur)
		times = append(times, lk.onset)
		// Edge in traversal orientation, regardless of stored key direction.
		edges = append(edges, dynnet.EdgeKey{From: lk.prev, To: cur})
		cur = lk.prev
	}
	vertices = append(vertices, r.source)

	// 5) Reverse in place into forward order.
	reverse(vertices)
	reverse(times)
	reverse(edges)

	// 6) Assemble through the validating constructor; a violation here is
	//    the same internal fault class as a broken chain.
	p, err := NewPath(vertices, times, edges)
	if err != nil {
		return TemporalPath{}, false, fmt.Errorf("%w: %v", ErrInconsistentState, err)
	}

	return p, true, nil
}

// ShortestPath computes the shortest time-respecting path from source to
// dest when traversal begins no earlier than start. It yields
// (zero, false, nil) exactly when TemporalDistance reports dest
// unreachable; otherwise the path's final time equals that distance.
func ShortestPath(net *dynnet.DynamicNetwork, source, dest dynnet.VertexID, start dynnet.TimePoint) (TemporalPath, bool, error) {
	r, err := EarliestArrival(net, source, start, WithPathTracking())
	if err != nil {
		return TemporalPath{}, false, err
	}

	return r.PathTo(dest)
}

// reverse flips a slice in place.
func reverse[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
