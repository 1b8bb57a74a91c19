// Package reach implements temporal reachability over dynamic networks:
// given that an edge can only be traversed while one of its activation
// spells is live, when does each vertex first become reachable?
//
// EarliestArrival runs a temporal label-setting relaxation: events are
// processed in non-decreasing onset order, so by the time an event with a
// given onset is handled, every arrival label ≤ that onset is already
// final and each relaxation reads a correct value. One pass suffices.
//
// Complexity:
//
//   - Time:  O(S log S), S = number of spells with onset ≥ start;
//     dominated by the event sort, the relaxation pass is O(S).
//   - Space: O(V + S) for the arrival table, predecessor arena and events.
package reach

import (
	"fmt"

	"github.com/katalvlaran/tempo/dynnet"
)

// Result holds the outcome of one EarliestArrival run: the source and
// start time of the query, the arrival table, and (when requested) the
// predecessor arena for path reconstruction.
type Result struct {
	source  dynnet.VertexID
	start   dynnet.TimePoint
	n       int
	arrival ArrivalTable
	pred    []link // flat arena indexed by VertexID; nil unless tracking
}

// EarliestArrival computes, for every vertex, the earliest time it can be
// reached from source when traversal begins no earlier than start.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. source must lie in [1..N] (ErrVertexNotFound).
//
// The source itself is always reached, at exactly start. "Unreached" is
// an absent table entry, not an error and not a sentinel time value.
//
// Options:
//
//   - WithPathTracking(): record predecessors so Result.PathTo works.
func EarliestArrival(net *dynnet.DynamicNetwork, source dynnet.VertexID, start dynnet.TimePoint, opts ...Option) (*Result, error) {
	// 1) Validate network.
	if net == nil {
		return nil, ErrNilNetwork
	}

	// 2) Build options.
	cfg := defaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Validate source.
	if source < 1 || source > net.N() {
		return nil, fmt.Errorf("%w: source %d of [1..%d]", ErrVertexNotFound, source, net.N())
	}

	// 4) Seed the table: the source is reachable at the start time, every
	//    other vertex is unreached (absent).
	r := &Result{
		source:  source,
		start:   start,
		n:       net.N(),
		arrival: make(ArrivalTable, net.N()),
	}
	r.arrival[source] = start
	if cfg.trackPaths {
		r.pred = make([]link, net.N()+1)
	}

	// 5) Single pass over events in non-decreasing onset order. For
	//    undirected networks each event also relaxes the mirrored
	//    direction — the spell activates the edge both ways.
	directed := net.Directed()
	var ev event
	for _, ev = range forwardEvents(net, start) {
		r.relax(ev.from, ev.to, ev.onset)
		if !directed {
			r.relax(ev.to, ev.from, ev.onset)
		}
	}

	return r, nil
}

// relax attempts the forward relaxation i → j at the given onset:
// if i is already reachable by the time the edge activates, and the
// activation improves j's label, record it.
func (r *Result) relax(i, j dynnet.VertexID, onset dynnet.TimePoint) {
	ti, ok := r.arrival[i]
	if !ok || ti > onset {
		return // i not yet reachable when the edge activates
	}
	if tj, reached := r.arrival[j]; reached && tj <= onset {
		return // no improvement
	}
	r.arrival[j] = onset
	if r.pred != nil {
		r.pred[j] = link{prev: i, onset: onset, set: true}
	}
}

// Source returns the query's source vertex.
func (r *Result) Source() dynnet.VertexID { return r.source }

// Start returns the query's start time.
func (r *Result) Start() dynnet.TimePoint { return r.start }

// Table returns the arrival table. The table is produced fresh per query
// and owned by the caller from here on.
func (r *Result) Table() ArrivalTable { return r.arrival }

// Distance returns the temporal distance from the source to dest: the
// earliest arrival time, with ok == false when dest is unreachable.
// Distance(source) is always (start, true) — the zero-length path is valid.
func (r *Result) Distance(dest dynnet.VertexID) (dynnet.TimePoint, bool) {
	return r.arrival.At(dest)
}

// ReachableSet returns all vertices with a finite arrival time, ascending
// by ID. It always contains the source.
// Complexity: O(V).
func (r *Result) ReachableSet() []dynnet.VertexID {
	out := make([]dynnet.VertexID, 0, len(r.arrival))
	var v dynnet.VertexID
	for v = 1; v <= r.n; v++ {
		if r.arrival.Reached(v) {
			out = append(out, v)
		}
	}

	return out
}

// TemporalDistance is the one-shot form of Result.Distance: the earliest
// time dest can be reached from source when starting at start, with
// ok == false when dest is unreachable.
func TemporalDistance(net *dynnet.DynamicNetwork, source, dest dynnet.VertexID, start dynnet.TimePoint) (t dynnet.TimePoint, ok bool, err error) {
	r, err := EarliestArrival(net, source, start)
	if err != nil {
		return 0, false, err
	}
	if dest < 1 || dest > r.n {
		return 0, false, fmt.Errorf("%w: destination %d of [1..%d]", ErrVertexNotFound, dest, r.n)
	}
	t, ok = r.Distance(dest)

	return t, ok, nil
}

// ForwardReachable is the one-shot form of Result.ReachableSet.
func ForwardReachable(net *dynnet.DynamicNetwork, source dynnet.VertexID, start dynnet.TimePoint) ([]dynnet.VertexID, error) {
	r, err := EarliestArrival(net, source, start)
	if err != nil {
		return nil, err
	}

	return r.ReachableSet(), nil
}
