package engine

import "fmt"

// ============================================================================
// CHART BUILDER — render-ready chart configs from a DashboardResult
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
}

// BuildSegmentRevenueChart renders revenue contribution by segment as a bar
// chart.
func BuildSegmentRevenueChart(result *DashboardResult) *ChartConfig {
	if len(result.SegmentRevenue) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(result.SegmentRevenue))
	for _, sr := range result.SegmentRevenue {
		points = append(points, ChartPoint{Label: string(sr.Segment), Value: sr.Revenue})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Revenue Contribution by Segment",
		XAxis:      "Segment",
		YAxis:      "Revenue",
		Series:     []ChartSeries{{Name: "Revenue", Data: points, Color: defaultColors[0]}},
		Colors:     defaultColors[:1],
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// BuildMonthlyTrendChart renders the monthly revenue trend as a line chart.
// When a projection is available, the forecast is added as a second series
// anchored at the last observed month.
func BuildMonthlyTrendChart(result *DashboardResult) *ChartConfig {
	if len(result.Monthly) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(result.Monthly))
	for _, b := range result.Monthly {
		points = append(points, ChartPoint{Label: b.Label, Value: b.Total})
	}

	series := []ChartSeries{{Name: "Revenue", Data: points, Color: defaultColors[0]}}

	if p := result.Projection; p != nil {
		last := result.Monthly[len(result.Monthly)-1]
		series = append(series, ChartSeries{
			Name: "Projected",
			Data: []ChartPoint{
				{Label: last.Label, Value: last.Total},
				{Label: p.NextMonth.Format("Jan-2006"), Value: p.Forecast},
			},
			Color: defaultColors[2],
		})
	}

	return &ChartConfig{
		ChartType:  "line",
		Title:      "Monthly Revenue Trend",
		XAxis:      "Month",
		YAxis:      "Revenue",
		Series:     series,
		Colors:     assignColors(len(series)),
		ShowLegend: len(series) > 1,
		ShowGrid:   true,
	}
}

// BuildScoreHistogram renders the population per score value (1–5) for one
// of the three measures: "R", "F", or "M".
func BuildScoreHistogram(result *DashboardResult, measure string) *ChartConfig {
	var title string
	var pick func(CustomerRFM) int
	switch measure {
	case "R":
		title = "Recency Score Distribution"
		pick = func(c CustomerRFM) int { return c.RScore }
	case "F":
		title = "Frequency Score Distribution"
		pick = func(c CustomerRFM) int { return c.FScore }
	case "M":
		title = "Monetary Score Distribution"
		pick = func(c CustomerRFM) int { return c.MScore }
	default:
		return nil
	}

	var counts [scoreBins + 1]int
	for _, c := range result.Customers {
		counts[pick(c)]++
	}

	points := make([]ChartPoint, 0, scoreBins)
	for score := 1; score <= scoreBins; score++ {
		points = append(points, ChartPoint{
			Label: fmt.Sprintf("%d", score),
			Value: float64(counts[score]),
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      "Score",
		YAxis:      "Customers",
		Series:     []ChartSeries{{Name: "Customers", Data: points, Color: defaultColors[1]}},
		Colors:     defaultColors[1:2],
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
