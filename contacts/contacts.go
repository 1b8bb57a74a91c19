// Package contacts flattens a dynamic network's edge spells into one
// globally time-ordered contact sequence.
package contacts

import (
	"errors"
	"sort"

	"github.com/katalvlaran/tempo/dynnet"
)

// ErrNilNetwork is returned if a nil network pointer is passed to Build.
var ErrNilNetwork = errors.New("contacts: network is nil")

// Contact is one materialized edge activation: the spell of From → To
// starting at Time and lasting Duration. Each spell produces exactly one
// Contact; overlapping spells are never merged.
type Contact struct {
	// From is the source vertex of the activation.
	From dynnet.VertexID

	// To is the target vertex of the activation.
	To dynnet.VertexID

	// Time is the activation onset.
	Time dynnet.TimePoint

	// Duration is terminus − onset of the underlying spell.
	Duration float64
}

// Sequence is an immutable, time-ascending list of Contacts. Size, vertex
// count, and directedness are fixed at construction; iteration is forward
// and restartable (Each may be called any number of times).
type Sequence struct {
	contacts []Contact
	n        int
	directed bool
}

// Build flattens every spell of every edge key into one Contact,
// concatenates across all keys, and stable-sorts ascending by time.
// Generation follows dynnet's deterministic enumeration, so contacts at
// equal times keep a fixed lexicographic key order.
// Complexity: O(S log S).
func Build(net *dynnet.DynamicNetwork) (*Sequence, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	cs := make([]Contact, 0, net.SpellCount())
	net.EachEdgeSpell(func(k dynnet.EdgeKey, s dynnet.Spell) {
		cs = append(cs, Contact{From: k.From, To: k.To, Time: s.Onset, Duration: s.Duration()})
	})
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Time < cs[j].Time })

	return &Sequence{contacts: cs, n: net.N(), directed: net.Directed()}, nil
}

// Len returns the number of contacts.
func (q *Sequence) Len() int { return len(q.contacts) }

// N returns the vertex count carried over from the source network.
func (q *Sequence) N() int { return q.n }

// Directed reports whether the source network was directed.
func (q *Sequence) Directed() bool { return q.directed }

// At returns the i-th contact in time order, with ok == false when i is
// out of range.
func (q *Sequence) At(i int) (Contact, bool) {
	if i < 0 || i >= len(q.contacts) {
		return Contact{}, false
	}

	return q.contacts[i], true
}

// Each iterates the contacts in time order from the beginning; returning
// false from fn stops early. The sequence is unchanged, so every call
// restarts from the first contact.
func (q *Sequence) Each(fn func(Contact) bool) {
	for _, c := range q.contacts {
		if !fn(c) {
			return
		}
	}
}

// Contacts returns a defensive copy of the full contact list.
func (q *Sequence) Contacts() []Contact {
	return append([]Contact(nil), q.contacts...)
}
