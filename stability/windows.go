// File: windows.go
// Role: Windowed stability — persistence and turnover across snapshots
//       sampled at consecutive window boundaries.

package stability

import (
	"math"

	"github.com/katalvlaran/tempo/dynnet"
)

// Persistence measures how much of the active edge set survives from one
// window boundary to the next, over windows of width w spanning the
// observation period.
//
// For each adjacent boundary pair (t1, t2) it accumulates
// |edges(t1) ∩ edges(t2)| and |edges(t1)|; the result is the single
// running ratio persisted/total over the whole series — not a per-window
// average, so pairs with more active edges weigh proportionally more.
//
// Fewer than two windows, or no active edges at any left boundary, yield
// the trivial result 1.0. w ≤ 0 is ErrBadWindow.
// Complexity: O(W · (K log K + S)), W = number of windows.
func Persistence(net *dynnet.DynamicNetwork, w float64) (float64, error) {
	if net == nil {
		return 0, ErrNilNetwork
	}
	if w <= 0 {
		return 0, ErrBadWindow
	}

	var persisted, total int
	eachBoundaryPair(net, w, func(prev, next *dynnet.Snapshot) {
		for _, k := range prev.Edges() {
			total++
			if next.HasEdge(k.From, k.To) {
				persisted++
			}
		}
	})
	if total == 0 {
		return 1.0, nil
	}

	return float64(persisted) / float64(total), nil
}

// Turnover measures edge formation and dissolution between consecutive
// window boundaries, over windows of width w.
//
// Per boundary pair (t1, t2):
//
//	formations   += |edges(t2) \ edges(t1)|
//	dissolutions += |edges(t1) \ edges(t2)|
//	at-risk-formation   += maxPossibleEdges − |edges(t1)|
//	at-risk-dissolution += |edges(t1)|
//
// Rates are totals divided by summed at-risk counts; a zero at-risk count
// yields a zero rate. Fewer than two windows yield the zero result.
// w ≤ 0 is ErrBadWindow.
// Complexity: O(W · (K log K + S)).
func Turnover(net *dynnet.DynamicNetwork, w float64) (TurnoverResult, error) {
	if net == nil {
		return TurnoverResult{}, ErrNilNetwork
	}
	if w <= 0 {
		return TurnoverResult{}, ErrBadWindow
	}

	maxEdges := maxPossibleEdges(net)
	var res TurnoverResult
	var atRiskForm, atRiskDiss int
	eachBoundaryPair(net, w, func(prev, next *dynnet.Snapshot) {
		var present int
		for _, k := range prev.Edges() {
			present++
			if !next.HasEdge(k.From, k.To) {
				res.Dissolutions++
			}
		}
		for _, k := range next.Edges() {
			if !prev.HasEdge(k.From, k.To) {
				res.Formations++
			}
		}
		atRiskForm += maxEdges - present
		atRiskDiss += present
	})

	if atRiskForm > 0 {
		res.FormationRate = float64(res.Formations) / float64(atRiskForm)
	}
	if atRiskDiss > 0 {
		res.DissolutionRate = float64(res.Dissolutions) / float64(atRiskDiss)
	}

	return res, nil
}

// eachBoundaryPair partitions the observation period [start, end] into
// ceil((end−start)/w) windows and invokes fn on the instantaneous
// snapshots at each adjacent boundary pair (start+(k−1)w, start+kw).
// Fewer than two windows means no pairs: fn is never called, and callers
// fall through to their documented trivial results.
func eachBoundaryPair(net *dynnet.DynamicNetwork, w float64, fn func(prev, next *dynnet.Snapshot)) {
	start, end := net.Observed()
	nWindows := int(math.Ceil((end - start) / w))
	if nWindows < 2 {
		return
	}

	// Extract once per boundary, reusing the right snapshot as the next
	// pair's left.
	prev := net.Extract(start)
	var k int
	var next *dynnet.Snapshot
	for k = 1; k < nWindows; k++ {
		next = net.Extract(start + float64(k)*w)
		fn(prev, next)
		prev = next
	}
}

// maxPossibleEdges returns the number of distinct edges the network could
// carry: N(N−1) directed, N(N−1)/2 undirected, plus N self-loops when
// loops are permitted.
func maxPossibleEdges(net *dynnet.DynamicNetwork) int {
	n := net.N()
	possible := n * (n - 1)
	if !net.Directed() {
		possible /= 2
	}
	if net.Looped() {
		possible += n
	}

	return possible
}
