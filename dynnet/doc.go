// Package dynnet provides production-grade storage for dynamic
// (time-varying) networks: a fixed vertex set plus activation spells on
// edges and vertices, with instantaneous and windowed snapshot extraction.
//
// What
//
//   - DynamicNetwork: thread-safe store over vertices [1..N].
//   - Spell: half-open activation interval [Onset, Terminus).
//   - AddEdgeSpell / AddVertexSpell attach activations; spells are
//     additive and never merged, so overlapping activations stay distinct.
//   - Extract(t): static Snapshot of edges active at instant t.
//   - ExtractRange(t1, t2, rule): windowed Snapshot under RuleAny
//     (intersects the window) or RuleAll (covers the window).
//   - Observation period: pinned via WithObserved, or derived as the span
//     of all attached spells.
//
// Why
//
//   - Every temporal measure in this module (reachability, durations,
//     persistence, turnover, contact sequences) is a pure read over this
//     one store; keeping it small and lock-disciplined keeps them all
//     trivially parallel.
//
// Determinism
//
//	EdgeKeys() sorts ascending by (From, To), EachEdgeSpell visits keys in
//	that order with spells in attachment order, and Snapshot.Edges() is
//	sorted. Measure engines built on these enumerations are fully
//	reproducible, including their tie-breaks.
//
// Undirected Networks
//
//	Spell storage preserves the key orientation you attached. Symmetry is
//	applied where it matters: traversal engines relax both directions, and
//	undirected Snapshots canonicalize keys so (i,j) and (j,i) compare as
//	the same edge.
//
// Complexity (K = |edge keys|, S = |spells|)
//
//   - Attach:  O(1) amortized
//   - Extract: O(K log K + S)
//   - Memory:  O(K + S)
//
// Usage
//
//	net, err := dynnet.New(5)
//	if err != nil { ... }
//	_ = net.AddEdgeSpell(1, 2, 0, 20)
//	_ = net.AddEdgeSpell(2, 3, 10, 40)
//	snap := net.Extract(15) // edges (1,2) and (2,3) are active
//
// Errors
//
//   - ErrBadVertexCount  if New is given a negative vertex count.
//   - ErrBadObserved     if WithObserved bounds are inverted.
//   - ErrVertexRange     if a spell references a vertex outside [1..N].
//   - ErrBadSpell        if a spell's onset exceeds its terminus.
//   - ErrLoopNotAllowed  if a self-loop spell is attached without WithLoops.
//   - ErrBadRange        if ExtractRange bounds are inverted.
//   - ErrBadRule         if ExtractRange is given an unrecognized rule.
package dynnet
