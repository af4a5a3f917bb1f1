package engine

import (
	"fmt"
	"math"
	"strings"
)

// ============================================================================
// TABLE BUILDER — render-ready tables from a DashboardResult
// ============================================================================

// BuildCustomerTable renders the full RFM table (one row per customer,
// sorted by RFM code descending).
func BuildCustomerTable(result *DashboardResult) *TableData {
	columns := []Column{
		{Key: "customer", Label: "Customer", Type: "text", Align: "left"},
		{Key: "recency", Label: "Recency (days)", Type: "number", Align: "right"},
		{Key: "frequency", Label: "Frequency", Type: "number", Align: "right"},
		{Key: "monetary", Label: "Monetary", Type: "number", Align: "right"},
		{Key: "code", Label: "RFM", Type: "text", Align: "center"},
		{Key: "segment", Label: "Segment", Type: "text", Align: "left"},
	}

	rows := make([][]string, 0, len(result.Customers))
	var total float64
	for _, c := range result.Customers {
		rows = append(rows, []string{
			c.CustomerID,
			fmt.Sprintf("%d", c.Recency),
			fmt.Sprintf("%d", c.Frequency),
			fmt.Sprintf("%.2f", c.Monetary),
			c.Code,
			string(c.Segment),
		})
		total += c.Monetary
	}

	return &TableData{
		Title:   "Customer RFM Table",
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("Total (%d customers)", len(result.Customers)),
			Values: map[string]string{
				"monetary": FormatAmount(total),
			},
		},
	}
}

// BuildSegmentRevenueTable renders the revenue rollup with share percentages.
func BuildSegmentRevenueTable(result *DashboardResult) *TableData {
	columns := []Column{
		{Key: "segment", Label: "Segment", Type: "text", Align: "left"},
		{Key: "customers", Label: "Customers", Type: "number", Align: "center"},
		{Key: "revenue", Label: "Revenue", Type: "number", Align: "right"},
		{Key: "share", Label: "Revenue %", Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(result.SegmentRevenue))
	var total float64
	for _, sr := range result.SegmentRevenue {
		rows = append(rows, []string{
			string(sr.Segment),
			fmt.Sprintf("%d", sr.Customers),
			fmt.Sprintf("%.2f", sr.Revenue),
			fmt.Sprintf("%.1f%%", sr.Share),
		})
		total += sr.Revenue
	}

	return &TableData{
		Title:   "Revenue Contribution by Segment",
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  "Total",
			Values: map[string]string{"revenue": FormatAmount(total)},
		},
	}
}

// BuildPreferredProductTable renders the most-preferred product per segment.
func BuildPreferredProductTable(result *DashboardResult) *TableData {
	columns := []Column{
		{Key: "segment", Label: "Segment", Type: "text", Align: "left"},
		{Key: "product", Label: "Product", Type: "text", Align: "left"},
		{Key: "customers", Label: "Customers", Type: "number", Align: "center"},
	}

	rows := make([][]string, 0, len(result.PreferredBySegment))
	for _, sp := range result.PreferredBySegment {
		rows = append(rows, []string{string(sp.Segment), sp.Product, fmt.Sprintf("%d", sp.Customers)})
	}

	return &TableData{
		Title:   "Most Preferred Product by Segment",
		Columns: columns,
		Rows:    rows,
	}
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatAmount formats a monetary amount with comma separators and
// two decimals.
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	intPart := int64(amount)
	decPart := int64(math.Round((amount - float64(intPart)) * 100))
	if decPart == 100 { // rounding carried over
		intPart++
		decPart = 0
	}

	result := fmt.Sprintf("%s.%02d", FormatInt64(intPart), decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatInt64 formats an integer with comma separators.
func FormatInt64(n int64) string {
	if n < 0 {
		return "-" + FormatInt64(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt64(n/1000), n%1000)
}

// Round1 rounds to 1 decimal place (KPI display convention).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SegmentList renders a segment slice as a display string.
func SegmentList(segments []Segment) string {
	if len(segments) == 0 {
		return "All"
	}
	labels := make([]string, len(segments))
	for i, s := range segments {
		labels[i] = string(s)
	}
	return strings.Join(labels, ", ")
}
