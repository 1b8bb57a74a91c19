// Package stability provides production-grade edge-stability measures
// over a dynnet.DynamicNetwork: duration aggregation, windowed
// persistence and turnover, and tie-decay estimates.
//
// What
//
//   - EdgeDurations / VertexDurations: additive Σ (terminus − onset) per
//     key, reported as mean, median, total, or the full per-key mapping
//     (closed AggMode enumeration).
//   - SpellDurations: the raw per-spell duration sample.
//   - Persistence(net, w): fraction of active edges at one window
//     boundary still active at the next, as one running ratio over the
//     whole series.
//   - Turnover(net, w): formation and dissolution counts and rates
//     between consecutive boundaries (TurnoverResult).
//   - DecayRate / HalfLife: method-of-moments exponential decay of ties.
//
// Why
//
//   - Reachability says where a dynamic network can carry something;
//     these measures say how stable the substrate is — whether ties
//     persist, churn, or decay, and on what timescale.
//
// Windowing
//
//	The observation period [start, end] is split into ceil((end−start)/w)
//	windows. Snapshots are taken at each boundary and compared pairwise.
//	Fewer than two windows is the trivial regime: persistence 1.0, zero
//	turnover — degenerate inputs yield documented neutral values, never
//	faults.
//
// Double-Counting Caveat
//
//	Duration aggregation is additive over spells. Overlapping spells on
//	the same key double-count the overlapped time; that is a property of
//	the caller's data, kept as-is because "fixing" it would silently
//	change the metric's published semantics.
//
// Complexity (K = |edge keys|, S = |spells|, W = windows)
//
//   - Durations:            O(K log K + S)
//   - Persistence/Turnover: O(W · (K log K + S))
//   - Decay:                O(K log K + S)
//
// Usage
//
//	total, _, err := stability.EdgeDurations(net, stability.AggTotal)
//	_, perKey, err := stability.EdgeDurations(net, stability.AggAll)
//	p, err := stability.Persistence(net, 10)
//	tr, err := stability.Turnover(net, 10)
//	rate, err := stability.DecayRate(net)
//
// Errors
//
//   - ErrNilNetwork  if the network pointer is nil.
//   - ErrUnknownMode if an aggregation mode is outside the enumeration.
//   - ErrBadWindow   if a window width is zero or negative.
package stability
