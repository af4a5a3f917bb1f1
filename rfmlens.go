// Package rfmlens computes percentile-based RFM customer segmentation
// from order transaction data.
//
// Usage:
//
//	import "github.com/rfmlens/rfmlens/engine"
//
//	result, err := engine.Execute(orders, snapshot,
//	    engine.WithSegmentFilter(engine.SegmentChampion, engine.SegmentLoyal),
//	    engine.WithActiveWindow(30),
//	)
//
// The engine takes raw order records plus a snapshot date and returns a
// render-ready DashboardResult (customer RFM table, segment revenue,
// monthly trend, next-month projection, preferred products).
//
// Ingestion is handled separately by the helpers (CSV) and database (MySQL)
// packages. The engine itself never performs I/O — all computation is local
// and every run recomputes from the raw dataset.
package rfmlens
