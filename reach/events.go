// File: events.go
// Role: Edge event stream — flattening edge spells into a time-ordered
//       event sequence for the solvers.
// Determinism:
//   - Events are generated by dynnet.EachEdgeSpell (keys ascending,
//     spells in attachment order) and stable-sorted, so events with equal
//     timestamps keep a fixed lexicographic order. Recorded predecessors
//     are therefore reproducible run to run.

package reach

import (
	"sort"

	"github.com/katalvlaran/tempo/dynnet"
)

// event is one edge activation: the spell [onset, terminus) of the edge
// from → to. Multi-spell edges contribute one event per spell; spells are
// never merged.
type event struct {
	onset    dynnet.TimePoint
	terminus dynnet.TimePoint
	from     dynnet.VertexID
	to       dynnet.VertexID
}

// forwardEvents returns all events with onset ≥ t0, ascending by onset.
// Complexity: O(S log S), S = qualifying spells; dominated by the sort.
func forwardEvents(net *dynnet.DynamicNetwork, t0 dynnet.TimePoint) []event {
	evs := make([]event, 0, net.SpellCount())
	net.EachEdgeSpell(func(k dynnet.EdgeKey, s dynnet.Spell) {
		if s.Onset >= t0 {
			evs = append(evs, event{onset: s.Onset, terminus: s.Terminus, from: k.From, to: k.To})
		}
	})
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].onset < evs[j].onset })

	return evs
}

// backwardEvents returns all events with terminus ≤ t1, descending by
// terminus, for the reverse-time solver.
// Complexity: O(S log S).
func backwardEvents(net *dynnet.DynamicNetwork, t1 dynnet.TimePoint) []event {
	evs := make([]event, 0, net.SpellCount())
	net.EachEdgeSpell(func(k dynnet.EdgeKey, s dynnet.Spell) {
		if s.Terminus <= t1 {
			evs = append(evs, event{onset: s.Onset, terminus: s.Terminus, from: k.From, to: k.To})
		}
	})
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].terminus > evs[j].terminus })

	return evs
}
