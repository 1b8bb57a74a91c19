// Package stability defines aggregation modes, result types, and error
// definitions for edge-stability measures over a dynnet.DynamicNetwork.
package stability

import "errors"

// Sentinel errors for stability measures.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed.
	ErrNilNetwork = errors.New("stability: network is nil")

	// ErrUnknownMode is returned for an aggregation mode outside the
	// closed AggMode enumeration.
	ErrUnknownMode = errors.New("stability: unrecognized aggregation mode")

	// ErrBadWindow is returned when a window width is zero or negative.
	ErrBadWindow = errors.New("stability: window width must be positive")
)

// AggMode selects how per-key duration totals are aggregated. The
// enumeration is closed and matched exhaustively; any other value is
// rejected eagerly with ErrUnknownMode before computation begins.
//
//   - AggMean   — arithmetic mean across keys.
//   - AggMedian — median across keys (average of the two middles for an
//     even count).
//   - AggTotal  — sum across keys.
//   - AggAll    — no aggregation; the full per-key mapping is returned.
type AggMode int

const (
	// AggMean averages the per-key totals.
	AggMean AggMode = iota

	// AggMedian takes the median of the per-key totals.
	AggMedian

	// AggTotal sums the per-key totals.
	AggTotal

	// AggAll returns the per-key mapping unaggregated.
	AggAll
)

// TurnoverResult reports edge formation and dissolution between
// consecutive sampled windows, accumulated over the whole series.
//
// Rates are total event counts divided by total at-risk counts: an edge
// absent at a boundary is at risk of forming by the next one, an edge
// present is at risk of dissolving. A zero at-risk count yields a zero
// rate, never a division fault.
type TurnoverResult struct {
	// FormationRate is Formations divided by the summed formation
	// opportunities (possible-but-absent edges) across all window pairs.
	FormationRate float64

	// DissolutionRate is Dissolutions divided by the summed dissolution
	// opportunities (present edges) across all window pairs.
	DissolutionRate float64

	// Formations counts edges present at a boundary but not the previous one.
	Formations int

	// Dissolutions counts edges present at a boundary but not the next one.
	Dissolutions int
}
