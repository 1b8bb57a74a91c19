// File: decay.go
// Role: Tie-decay estimation — method-of-moments exponential rate and its
//       half-life transform over the raw per-spell duration sample.

package stability

import (
	"math"

	"github.com/katalvlaran/tempo/dynnet"
)

// DecayRate estimates the exponential decay rate of ties by the method of
// moments: rate = 1 / mean(per-spell durations). The sample is the raw
// duration of every edge spell (SpellDurations), not the per-key
// aggregate — a key with three short spells contributes three short
// observations, not one long one.
//
// An empty sample or a zero mean yields 0, never a division fault.
// Complexity: O(K log K + S).
func DecayRate(net *dynnet.DynamicNetwork) (float64, error) {
	sample, err := SpellDurations(net)
	if err != nil {
		return 0, err
	}
	if len(sample) == 0 {
		return 0, nil
	}
	m := mean(sample)
	if m == 0 {
		return 0, nil
	}

	return 1 / m, nil
}

// HalfLife returns the half-life transform ln(2) · rate of the estimated
// decay rate. Degenerate samples yield 0, matching DecayRate.
func HalfLife(net *dynnet.DynamicNetwork) (float64, error) {
	rate, err := DecayRate(net)
	if err != nil {
		return 0, err
	}

	return math.Ln2 * rate, nil
}
