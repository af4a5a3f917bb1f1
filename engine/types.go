package engine

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// ENGINE TYPES — RFM Segmentation
// ============================================================================
// OrderRecord is the raw input row; CustomerRFM is the per-customer aggregate.
// DashboardResult is the render-ready output consumed by the presentation
// layer. Chart/table shapes are kept presentation-agnostic so any frontend
// can render them unchanged.
// ============================================================================

// ============================================================================
// INPUT
// ============================================================================

// OrderRecord is a single order transaction.
// Category and Quantity are optional (zero value when the dataset
// does not carry them).
type OrderRecord struct {
	CustomerID string    `json:"customerId"`
	OrderID    string    `json:"orderId"`
	OrderDate  time.Time `json:"orderDate"`
	Product    string    `json:"product"`
	Category   string    `json:"category,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	Value      float64   `json:"value"`
	Discount   float64   `json:"discount"`
}

// ============================================================================
// DERIVED — one row per distinct customer
// ============================================================================

// CustomerRFM is the per-customer aggregate plus its scores and segment.
// Recency is not clamped at zero: a future-dated order under the "today"
// snapshot policy yields a negative value.
type CustomerRFM struct {
	CustomerID string  `json:"customerId"`
	Recency    int     `json:"recency"`   // whole days since last order
	Frequency  int     `json:"frequency"` // order count
	Monetary   float64 `json:"monetary"`  // summed order value

	RScore int `json:"rScore"` // 1–5
	FScore int `json:"fScore"` // 1–5
	MScore int `json:"mScore"` // 1–5

	// Code is the 3-digit concatenation of the scores ("534"),
	// a sortable composite label, not an arithmetic quantity.
	Code    string  `json:"code"`
	Segment Segment `json:"segment"`
}

// Segment is a named customer category derived from the score triple.
type Segment string

const (
	SegmentChampion    Segment = "Champion Customer"
	SegmentLoyal       Segment = "Loyal Customer"
	SegmentFenceSitter Segment = "Fence Sitter"
	SegmentAtRisk      Segment = "At Risk Customer"
	SegmentChurned     Segment = "Churned Customer"
)

// AllSegments lists every segment in cascade order.
var AllSegments = []Segment{
	SegmentChampion,
	SegmentLoyal,
	SegmentFenceSitter,
	SegmentAtRisk,
	SegmentChurned,
}

// ============================================================================
// ANALYTICS OUTPUT
// ============================================================================

// KPIData holds the headline scalars for the (filtered) customer population.
type KPIData struct {
	TotalCustomers  int     `json:"totalCustomers"`
	ActiveCustomers int     `json:"activeCustomers"` // Recency within the active window
	AvgRecency      float64 `json:"avgRecency"`
	AvgFrequency    float64 `json:"avgFrequency"`
	AvgMonetary     float64 `json:"avgMonetary"`
}

// SegmentRevenue is one segment's share of total Monetary.
type SegmentRevenue struct {
	Segment   Segment `json:"segment"`
	Revenue   float64 `json:"revenue"`
	Share     float64 `json:"share"` // percent of filtered total
	Customers int     `json:"customers"`
}

// MonthBucket is one calendar month's summed order value.
type MonthBucket struct {
	Month time.Time `json:"month"` // first day of the month, UTC
	Label string    `json:"label"` // "Jan-2026"
	Total float64   `json:"total"`
}

// Projection is the fitted degree-1 trend and its next-month forecast.
type Projection struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	Months    int       `json:"months"`    // buckets used for the fit
	NextMonth time.Time `json:"nextMonth"` // month the forecast refers to
	Forecast  float64   `json:"forecast"`  // fitted line at index Months+1
}

// CustomerProduct is a customer's most frequently ordered product.
type CustomerProduct struct {
	CustomerID string `json:"customerId"`
	Product    string `json:"product"`
	Orders     int    `json:"orders"`
}

// SegmentProduct is the product most often preferred within a segment.
type SegmentProduct struct {
	Segment   Segment `json:"segment"`
	Product   string  `json:"product"`
	Customers int     `json:"customers"` // customers preferring it
}

// CategoryProduct is the highest-volume product within a category.
type CategoryProduct struct {
	Category string `json:"category"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// ============================================================================
// DASHBOARD RESULT — render-ready output
// ============================================================================

// DashboardResult is the full output of one analysis run.
// Computed fresh from the raw dataset on every run; never persisted.
type DashboardResult struct {
	RunID    uuid.UUID `json:"runId"`
	Snapshot time.Time `json:"snapshot"`

	// Customers is the (optionally segment-filtered) RFM table,
	// sorted by Code descending.
	Customers []CustomerRFM `json:"customers"`

	KPI            KPIData          `json:"kpi"`
	SegmentRevenue []SegmentRevenue `json:"segmentRevenue"`
	Monthly        []MonthBucket    `json:"monthly"`
	Projection     *Projection      `json:"projection,omitempty"` // nil when < 2 month buckets

	PreferredByCustomer []CustomerProduct `json:"preferredByCustomer"`
	PreferredBySegment  []SegmentProduct  `json:"preferredBySegment"`
	MostSoldByCategory  []CategoryProduct `json:"mostSoldByCategory,omitempty"`

	// Errors lists analytics skipped for insufficient data.
	// The rest of the result is still valid.
	Errors []string `json:"errors,omitempty"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "line"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
