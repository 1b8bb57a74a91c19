// Package reach provides production-grade temporal reachability over a
// dynnet.DynamicNetwork: earliest arrival, latest departure, forward and
// backward reachable sets, and shortest time-respecting paths.
//
// What
//
//   - EarliestArrival(net, source, start): for every vertex, the earliest
//     time it becomes reachable from source, traversing edges only while
//     one of their activation spells is live and never moving backward in
//     time. Returns a Result with:
//   - Table: ArrivalTable (absent entry = unreached)
//   - Distance: temporal distance to one destination
//   - ReachableSet: all reached vertices, ascending
//   - PathTo: full path reconstruction (with WithPathTracking)
//   - LatestDeparture(net, target, end): reverse-time mirror — the latest
//     moment each vertex can set off and still reach target by end.
//   - ShortestPath / TemporalDistance / ForwardReachable /
//     BackwardReachable: one-shot conveniences over the solvers.
//
// Why
//
//   - On a dynamic network, "is there a path" depends on when you ask:
//     each hop must use an activation no earlier than the previous one.
//     Static shortest-path machinery cannot answer that; a single
//     event-ordered relaxation pass can.
//
// Algorithm
//
//	Temporal label-setting. Events (one per spell) are processed in
//	non-decreasing onset order (non-increasing terminus order for the
//	reverse solver). Because of that ordering, a vertex's label is final
//	by the time any event that could read it is processed, so one pass
//	over the sorted events suffices — no priority queue needed.
//
// Determinism
//
//	Events are generated in ascending edge-key order with spells in
//	attachment order, then stable-sorted by timestamp. Relaxations at
//	equal timestamps are commutative in value, and the fixed tie-break
//	additionally makes recorded predecessors — hence reconstructed
//	paths — reproducible run to run.
//
// Unreachability
//
//	Absence of a path is a value, not a fault: tables omit the vertex,
//	Distance reports ok == false, PathTo returns found == false. Only a
//	broken predecessor chain — a solver bug — raises
//	ErrInconsistentState.
//
// Complexity (V = |vertices|, S = |qualifying spells|)
//
//   - Time:   O(S log S)   (event sort; the relaxation pass is linear)
//   - Memory: O(V + S)     (tables, predecessor arena, event slice)
//
// Usage
//
//	net, _ := dynnet.New(5)
//	_ = net.AddEdgeSpell(1, 2, 0, 20)
//	_ = net.AddEdgeSpell(2, 3, 10, 40)
//	_ = net.AddEdgeSpell(3, 4, 30, 60)
//	_ = net.AddEdgeSpell(4, 5, 50, 80)
//
//	if t, ok, _ := reach.TemporalDistance(net, 1, 5, 0); ok {
//	    fmt.Println("vertex 5 first reached at", t) // 50
//	}
//	path, found, _ := reach.ShortestPath(net, 1, 5, 0)
//	if found {
//	    fmt.Println(path.Vertices, path.Times) // [1 2 3 4 5] [0 10 30 50]
//	}
//
// Errors
//
//   - ErrNilNetwork         if the network pointer is nil.
//   - ErrVertexNotFound     if a queried vertex lies outside [1..N].
//   - ErrPathNotTracked     if PathTo is called on an untracked run.
//   - ErrBadPath            if a TemporalPath is constructed malformed.
//   - ErrInconsistentState  if the predecessor chain is broken (solver bug).
package reach
