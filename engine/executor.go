package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// EXECUTOR — one full analysis run
// ============================================================================
// Entry point: Execute(orders, snapshot, opts...)
//
// Pipeline:
//   1. Check snapshot bounds against the dataset
//   2. Aggregate orders → per-customer R/F/M
//   3. Quantile-score and classify
//   4. Apply the segment filter
//   5. KPIs + supplementary analytics
//   6. Return a render-ready DashboardResult
//
// Pure function of (orders, snapshot, options): no hidden cached state,
// no I/O. Re-running with different parameters recomputes everything from
// the raw orders.
// ============================================================================

// Execute runs the full RFM pipeline for one snapshot date and filter
// selection.
//
// Options:
//   - WithSegmentFilter(segments...) — keep only the given segments
//   - WithActiveWindow(days) — active-customer KPI threshold
//   - WithSnapshotMaxDatasetEnd() — cap the snapshot at the dataset end
//   - WithClock(now) — clock for the default "today" bound
func Execute(orders []OrderRecord, snapshot time.Time, opts ...Option) (*DashboardResult, error) {
	cfg := applyOptions(opts)

	if len(orders) == 0 {
		return nil, &InsufficientDataError{Analytic: "rfm scores", Reason: "dataset contains no order records"}
	}

	snapshot = DateOnly(snapshot)
	minDate, maxDate := DateBounds(orders)

	maxAllowed := DateOnly(cfg.Now())
	if cfg.SnapshotMaxDataset {
		maxAllowed = maxDate
	}
	if snapshot.Before(minDate) || snapshot.After(maxAllowed) {
		return nil, &DateRangeError{Snapshot: snapshot, Min: minDate, Max: maxAllowed}
	}

	customers := Aggregate(orders, snapshot)
	if err := Score(customers); err != nil {
		return nil, err
	}
	ClassifyAll(customers)

	filtered := filterSegments(customers, cfg.Segments)
	sortByCode(filtered)

	result := &DashboardResult{
		RunID:    uuid.New(),
		Snapshot: snapshot,

		Customers:      filtered,
		KPI:            ComputeKPIs(filtered, cfg.ActiveWindowDays),
		SegmentRevenue: SegmentRevenueRollup(filtered),
		Monthly:        MonthlyRevenue(orders),
	}

	projection, err := ProjectRevenue(result.Monthly)
	if err != nil {
		// The rest of the dashboard still renders.
		result.Errors = append(result.Errors, err.Error())
	} else {
		result.Projection = projection
	}

	preferred := PreferredByCustomer(orders)
	result.PreferredByCustomer = restrictToCustomers(preferred, filtered)
	result.PreferredBySegment = PreferredBySegment(filtered, preferred)
	result.MostSoldByCategory = MostSoldByCategory(orders)

	return result, nil
}

// filterSegments keeps customers whose segment is in the selection.
// An empty selection keeps everyone.
func filterSegments(customers []CustomerRFM, segments []Segment) []CustomerRFM {
	if len(segments) == 0 {
		return customers
	}
	allowed := make(map[Segment]bool, len(segments))
	for _, s := range segments {
		allowed[s] = true
	}
	out := make([]CustomerRFM, 0, len(customers))
	for _, c := range customers {
		if allowed[c.Segment] {
			out = append(out, c)
		}
	}
	return out
}

// sortByCode orders customers by RFM code descending, customer ID ascending
// on ties, matching the dashboard's table ordering.
func sortByCode(customers []CustomerRFM) {
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Code != customers[j].Code {
			return customers[i].Code > customers[j].Code
		}
		return customers[i].CustomerID < customers[j].CustomerID
	})
}

// restrictToCustomers keeps preferred-product rows whose customer survived
// the segment filter.
func restrictToCustomers(preferred []CustomerProduct, customers []CustomerRFM) []CustomerProduct {
	keep := make(map[string]bool, len(customers))
	for _, c := range customers {
		keep[c.CustomerID] = true
	}
	out := make([]CustomerProduct, 0, len(preferred))
	for _, p := range preferred {
		if keep[p.CustomerID] {
			out = append(out, p)
		}
	}
	return out
}
