package engine

import (
	"sort"
	"time"
)

// ============================================================================
// SUPPLEMENTARY ANALYTICS — rollups, trend, projection, product lookups
// ============================================================================
// These consume the classified customer set plus the raw orders. The monthly
// trend and product lookups always read the raw orders, never previously
// derived rows.
// ============================================================================

// SegmentRevenueRollup sums Monetary per segment and expresses each
// segment's share of the population total. Segments are emitted in
// cascade order; absent segments are skipped.
func SegmentRevenueRollup(customers []CustomerRFM) []SegmentRevenue {
	revenue := make(map[Segment]float64)
	count := make(map[Segment]int)
	var total float64

	for _, c := range customers {
		revenue[c.Segment] += c.Monetary
		count[c.Segment]++
		total += c.Monetary
	}

	out := make([]SegmentRevenue, 0, len(revenue))
	for _, seg := range AllSegments {
		if count[seg] == 0 {
			continue
		}
		share := 0.0
		if total > 0 {
			share = revenue[seg] / total * 100
		}
		out = append(out, SegmentRevenue{
			Segment:   seg,
			Revenue:   revenue[seg],
			Share:     share,
			Customers: count[seg],
		})
	}
	return out
}

// ============================================================================
// MONTHLY TREND
// ============================================================================

// MonthlyRevenue sums order value per calendar month, chronologically
// ordered with no duplicate month keys.
func MonthlyRevenue(orders []OrderRecord) []MonthBucket {
	totals := make(map[time.Time]float64)
	for _, o := range orders {
		totals[monthOf(o.OrderDate)] += o.Value
	}

	out := make([]MonthBucket, 0, len(totals))
	for m, total := range totals {
		out = append(out, MonthBucket{Month: m, Label: m.Format("Jan-2006"), Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// monthOf truncates a date to the first day of its month, UTC.
func monthOf(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// ============================================================================
// LINEAR PROJECTION
// ============================================================================

// ProjectRevenue fits a first-degree polynomial (closed-form ordinary least
// squares) to (month index, monthly total) pairs, month index starting at 1,
// and evaluates the line at index len(monthly)+1. Requires at least 2 month
// buckets.
func ProjectRevenue(monthly []MonthBucket) (*Projection, error) {
	n := len(monthly)
	if n < 2 {
		return nil, &InsufficientDataError{
			Analytic: "revenue projection",
			Reason:   "need at least 2 month buckets for a degree-1 fit",
		}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, b := range monthly {
		x := float64(i + 1)
		sumX += x
		sumY += b.Total
		sumXY += x * b.Total
		sumXX += x * x
	}

	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	next := float64(n + 1)
	return &Projection{
		Slope:     slope,
		Intercept: intercept,
		Months:    n,
		NextMonth: monthly[n-1].Month.AddDate(0, 1, 0),
		Forecast:  intercept + slope*next,
	}, nil
}

// ============================================================================
// PRODUCT LOOKUPS
// ============================================================================

// PreferredByCustomer finds each customer's most frequently ordered product.
// Customers and products are visited in first-encounter order; a tie keeps
// the product encountered first.
func PreferredByCustomer(orders []OrderRecord) []CustomerProduct {
	type tally struct {
		products []string // first-encounter order
		counts   map[string]int
	}

	byCustomer := make(map[string]*tally)
	var customerOrder []string

	for _, o := range orders {
		t, ok := byCustomer[o.CustomerID]
		if !ok {
			t = &tally{counts: make(map[string]int)}
			byCustomer[o.CustomerID] = t
			customerOrder = append(customerOrder, o.CustomerID)
		}
		if _, seen := t.counts[o.Product]; !seen {
			t.products = append(t.products, o.Product)
		}
		t.counts[o.Product]++
	}

	out := make([]CustomerProduct, 0, len(customerOrder))
	for _, id := range customerOrder {
		t := byCustomer[id]
		best, bestCount := "", 0
		for _, p := range t.products {
			if t.counts[p] > bestCount {
				best, bestCount = p, t.counts[p]
			}
		}
		out = append(out, CustomerProduct{CustomerID: id, Product: best, Orders: bestCount})
	}
	return out
}

// PreferredBySegment rolls each customer's preferred product up to the
// segment level: per segment, the product most customers prefer. Only
// customers present in the (possibly filtered) customer set contribute.
func PreferredBySegment(customers []CustomerRFM, preferred []CustomerProduct) []SegmentProduct {
	segmentOf := make(map[string]Segment, len(customers))
	for _, c := range customers {
		segmentOf[c.CustomerID] = c.Segment
	}

	type tally struct {
		products []string
		counts   map[string]int
	}
	bySegment := make(map[Segment]*tally)

	for _, p := range preferred {
		seg, ok := segmentOf[p.CustomerID]
		if !ok {
			continue // filtered out
		}
		t, ok := bySegment[seg]
		if !ok {
			t = &tally{counts: make(map[string]int)}
			bySegment[seg] = t
		}
		if _, seen := t.counts[p.Product]; !seen {
			t.products = append(t.products, p.Product)
		}
		t.counts[p.Product]++
	}

	out := make([]SegmentProduct, 0, len(bySegment))
	for _, seg := range AllSegments {
		t, ok := bySegment[seg]
		if !ok {
			continue
		}
		best, bestCount := "", 0
		for _, p := range t.products {
			if t.counts[p] > bestCount {
				best, bestCount = p, t.counts[p]
			}
		}
		out = append(out, SegmentProduct{Segment: seg, Product: best, Customers: bestCount})
	}
	return out
}

// MostSoldByCategory finds the highest-volume product per category by summed
// quantity. Orders without a category are skipped; an order with zero
// quantity counts as one unit.
func MostSoldByCategory(orders []OrderRecord) []CategoryProduct {
	type tally struct {
		products []string
		units    map[string]int
	}

	byCategory := make(map[string]*tally)
	var categoryOrder []string

	for _, o := range orders {
		if o.Category == "" {
			continue
		}
		t, ok := byCategory[o.Category]
		if !ok {
			t = &tally{units: make(map[string]int)}
			byCategory[o.Category] = t
			categoryOrder = append(categoryOrder, o.Category)
		}
		qty := o.Quantity
		if qty == 0 {
			qty = 1
		}
		if _, seen := t.units[o.Product]; !seen {
			t.products = append(t.products, o.Product)
		}
		t.units[o.Product] += qty
	}

	out := make([]CategoryProduct, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		t := byCategory[cat]
		best, bestUnits := "", 0
		for _, p := range t.products {
			if t.units[p] > bestUnits {
				best, bestUnits = p, t.units[p]
			}
		}
		out = append(out, CategoryProduct{Category: cat, Product: best, Quantity: bestUnits})
	}
	return out
}

// ============================================================================
// KPIS
// ============================================================================

// ComputeKPIs derives the headline scalars for a customer population.
// A customer is active when Recency is within activeWindowDays.
func ComputeKPIs(customers []CustomerRFM, activeWindowDays int) KPIData {
	kpi := KPIData{TotalCustomers: len(customers)}
	if len(customers) == 0 {
		return kpi
	}

	var sumR, sumF, sumM float64
	for _, c := range customers {
		if c.Recency <= activeWindowDays {
			kpi.ActiveCustomers++
		}
		sumR += float64(c.Recency)
		sumF += float64(c.Frequency)
		sumM += c.Monetary
	}

	n := float64(len(customers))
	kpi.AvgRecency = sumR / n
	kpi.AvgFrequency = sumF / n
	kpi.AvgMonetary = sumM / n
	return kpi
}
