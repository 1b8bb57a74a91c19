// File: latest.go
// Role: Reverse-time mirror of EarliestArrival — latest possible
//       departure times toward a fixed target.

package reach

import (
	"fmt"

	"github.com/katalvlaran/tempo/dynnet"
)

// Departure holds the outcome of one LatestDeparture run: for every
// vertex, the latest time it can still set off and reach the target no
// later than the query's end time.
type Departure struct {
	target    dynnet.VertexID
	end       dynnet.TimePoint
	n         int
	departure DepartureTable
}

// LatestDeparture computes, for every vertex, the latest departure time
// that still reaches target by end. It is the reverse-time mirror of
// EarliestArrival: events with terminus ≤ end are processed in
// non-increasing terminus order, so each departure label is final before
// any earlier-ending event could read it.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. target must lie in [1..N] (ErrVertexNotFound).
//
// The target itself always departs at exactly end.
//
// Complexity: O(S log S), S = number of spells with terminus ≤ end.
func LatestDeparture(net *dynnet.DynamicNetwork, target dynnet.VertexID, end dynnet.TimePoint) (*Departure, error) {
	// 1) Validate network.
	if net == nil {
		return nil, ErrNilNetwork
	}

	// 2) Validate target.
	if target < 1 || target > net.N() {
		return nil, fmt.Errorf("%w: target %d of [1..%d]", ErrVertexNotFound, target, net.N())
	}

	// 3) Seed: the target can "depart" at the end time itself.
	d := &Departure{
		target:    target,
		end:       end,
		n:         net.N(),
		departure: make(DepartureTable, net.N()),
	}
	d.departure[target] = end

	// 4) Single pass, descending by terminus. An edge i → j whose spell
	//    ends at terminus lets i depart at terminus provided j can still
	//    depart at or after that moment.
	directed := net.Directed()
	var ev event
	for _, ev = range backwardEvents(net, end) {
		d.relax(ev.from, ev.to, ev.terminus)
		if !directed {
			d.relax(ev.to, ev.from, ev.terminus)
		}
	}

	return d, nil
}

// relax attempts the reverse relaxation along i → j at the given terminus:
// if j can depart no earlier than terminus, then i may leave as late as
// terminus; record it when that improves i's label.
func (d *Departure) relax(i, j dynnet.VertexID, terminus dynnet.TimePoint) {
	tj, ok := d.departure[j]
	if !ok || tj < terminus {
		return // j cannot forward a traversal ending at terminus
	}
	if ti, reached := d.departure[i]; reached && ti >= terminus {
		return // no improvement
	}
	d.departure[i] = terminus
}

// Target returns the query's target vertex.
func (d *Departure) Target() dynnet.VertexID { return d.target }

// End returns the query's end time.
func (d *Departure) End() dynnet.TimePoint { return d.end }

// Table returns the departure table, owned by the caller from here on.
func (d *Departure) Table() DepartureTable { return d.departure }

// DepartureOf returns the latest departure time from v toward the target,
// with ok == false when the target is not reachable from v at all.
func (d *Departure) DepartureOf(v dynnet.VertexID) (dynnet.TimePoint, bool) {
	return d.departure.At(v)
}

// BackwardSet returns all vertices able to reach the target, ascending by
// ID. It always contains the target.
// Complexity: O(V).
func (d *Departure) BackwardSet() []dynnet.VertexID {
	out := make([]dynnet.VertexID, 0, len(d.departure))
	var v dynnet.VertexID
	for v = 1; v <= d.n; v++ {
		if d.departure.Reached(v) {
			out = append(out, v)
		}
	}

	return out
}

// BackwardReachable is the one-shot form of Departure.BackwardSet.
func BackwardReachable(net *dynnet.DynamicNetwork, target dynnet.VertexID, end dynnet.TimePoint) ([]dynnet.VertexID, error) {
	d, err := LatestDeparture(net, target, end)
	if err != nil {
		return nil, err
	}

	return d.BackwardSet(), nil
}
