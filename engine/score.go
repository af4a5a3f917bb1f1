package engine

import (
	"fmt"
	"sort"
)

// ============================================================================
// PERCENTILE SCORER — raw measures → 1–5 quantile scores
// ============================================================================
// Each measure is binned independently into 5 equal-population groups using
// linear-interpolation quantile edges over the customer population.
//
//   Recency   — binned on raw values; smallest Recency (most recent) → 5.
//   Frequency — rank-first tie break, ascending rank → ascending score.
//   Monetary  — same discipline as Frequency.
//
// Ties in Frequency/Monetary are broken by (raw value, customer ID) so the
// scores never depend on incidental input row order.
// ============================================================================

const scoreBins = 5

// Score attaches RScore/FScore/MScore and the concatenated Code to every
// customer, in place. Fails with an InsufficientDataError when the population
// cannot support 5 quantile cut points.
func Score(customers []CustomerRFM) error {
	n := len(customers)
	if n < scoreBins {
		return &InsufficientDataError{
			Analytic: "rfm scores",
			Reason:   fmt.Sprintf("need at least %d customers for quantile scoring, have %d", scoreBins, n),
		}
	}

	// Recency: quantile edges over the raw distribution, descending score.
	recency := make([]float64, n)
	for i, c := range customers {
		recency[i] = float64(c.Recency)
	}
	edges, ok := quantileEdges(recency)
	if !ok {
		return &InsufficientDataError{
			Analytic: "rfm scores",
			Reason:   "recency distribution is too uniform to form 5 quantile bins",
		}
	}
	for i := range customers {
		customers[i].RScore = scoreBins + 1 - binOf(edges, recency[i])
	}

	// Frequency and Monetary: rank first, then bin the ranks. Ranks are
	// distinct by construction, so the edges are always well formed.
	freqRanks := rankFirst(customers, func(c CustomerRFM) float64 { return float64(c.Frequency) })
	monRanks := rankFirst(customers, func(c CustomerRFM) float64 { return c.Monetary })

	rankEdges, _ := quantileEdges(freqRanks) // identical for any permutation of 1..n
	for i := range customers {
		customers[i].FScore = binOf(rankEdges, freqRanks[i])
		customers[i].MScore = binOf(rankEdges, monRanks[i])
	}

	for i := range customers {
		c := &customers[i]
		c.Code = fmt.Sprintf("%d%d%d", c.RScore, c.FScore, c.MScore)
	}
	return nil
}

// quantileEdges computes the 6 bin edges at quantiles 0, 0.2, ..., 1.0 with
// linear interpolation. Reports false when adjacent edges collide, meaning
// the distribution cannot be split into 5 equal-population bins.
func quantileEdges(values []float64) ([scoreBins + 1]float64, bool) {
	var edges [scoreBins + 1]float64

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	for k := 0; k <= scoreBins; k++ {
		pos := float64(n-1) * float64(k) / scoreBins
		lo := int(pos)
		frac := pos - float64(lo)
		if lo+1 < n {
			edges[k] = sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
		} else {
			edges[k] = sorted[lo]
		}
	}

	for k := 1; k <= scoreBins; k++ {
		if edges[k] <= edges[k-1] {
			return edges, false
		}
	}
	return edges, true
}

// binOf places a value into bin 1..5. Bins are left-open right-closed,
// with the minimum value belonging to bin 1.
func binOf(edges [scoreBins + 1]float64, v float64) int {
	const eps = 1e-9
	for k := 1; k < scoreBins; k++ {
		if v <= edges[k]+eps {
			return k
		}
	}
	return scoreBins
}

// rankFirst assigns distinct ranks 1..n ordered by (measure, customer ID).
// The customer ID is the documented deterministic secondary key.
func rankFirst(customers []CustomerRFM, measure func(CustomerRFM) float64) []float64 {
	n := len(customers)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := measure(customers[order[a]]), measure(customers[order[b]])
		if va != vb {
			return va < vb
		}
		return customers[order[a]].CustomerID < customers[order[b]].CustomerID
	})

	ranks := make([]float64, n)
	for rank, idx := range order {
		ranks[idx] = float64(rank + 1)
	}
	return ranks
}
