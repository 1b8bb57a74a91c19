// Package contacts builds contact sequences: the globally time-ordered
// flattening of a dynamic network's edge activations into discrete events.
//
// What
//
//   - Build(net): one Contact per edge spell — (From, To, Time, Duration) —
//     concatenated across all keys and stable-sorted ascending by time.
//   - Sequence: immutable, forward-iterable, restartable; size, vertex
//     count, and directedness fixed at construction. Materialized, not a
//     live stream — later network mutations do not leak into it.
//
// Why
//
//   - Many temporal analyses (inter-contact times, burstiness, event
//     replay) want the network as a flat event list rather than per-edge
//     spell storage. Building it once, sorted and immutable, makes those
//     passes trivial.
//
// Determinism
//
//	Contacts are generated in ascending edge-key order with spells in
//	attachment order, then stable-sorted by time, so equal-time contacts
//	keep a fixed lexicographic order.
//
// Complexity (S = |spells|)
//
//   - Build:  O(S log S)
//   - Memory: O(S)
//
// Usage
//
//	seq, err := contacts.Build(net)
//	if err != nil { ... }
//	seq.Each(func(c contacts.Contact) bool {
//	    fmt.Println(c.From, "→", c.To, "at", c.Time)
//	    return true
//	})
//
// Errors
//
//   - ErrNilNetwork if the network pointer is nil.
package contacts
