package engine

import (
	"time"
)

// ============================================================================
// AGGREGATOR — raw orders → one Recency/Frequency/Monetary row per customer
// ============================================================================
// Customers are emitted in first-encounter order. Every customer present in
// the input appears exactly once; scores and segment are attached later by
// Score and Classify.
// ============================================================================

// Aggregate groups orders by customer and computes the three raw measures
// against the snapshot date. Recency is the whole-day difference between the
// snapshot and the customer's most recent order.
func Aggregate(orders []OrderRecord, snapshot time.Time) []CustomerRFM {
	snapshot = DateOnly(snapshot)

	grouped := make(map[string]int) // customer → index into out
	out := make([]CustomerRFM, 0)
	last := make([]time.Time, 0) // most recent order date per customer

	for _, o := range orders {
		idx, seen := grouped[o.CustomerID]
		if !seen {
			idx = len(out)
			grouped[o.CustomerID] = idx
			out = append(out, CustomerRFM{CustomerID: o.CustomerID})
			last = append(last, DateOnly(o.OrderDate))
		}

		out[idx].Frequency++
		out[idx].Monetary += o.Value

		d := DateOnly(o.OrderDate)
		if d.After(last[idx]) {
			last[idx] = d
		}
	}

	for i := range out {
		out[i].Recency = DaysBetween(last[i], snapshot)
	}
	return out
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day difference to − from.
// Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)) / (24 * time.Hour))
}

// DateBounds returns the earliest and latest order date in the dataset.
func DateBounds(orders []OrderRecord) (min, max time.Time) {
	for i, o := range orders {
		d := DateOnly(o.OrderDate)
		if i == 0 {
			min, max = d, d
			continue
		}
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max
}
