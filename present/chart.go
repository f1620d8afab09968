package present

import (
	"strconv"

	"github.com/industash/industash/dataset"
	"github.com/industash/industash/engine"
)

// ============================================================================
// CHART BUILDERS — one per dashboard panel
// ============================================================================
// Each builder aggregates a (possibly pre-filtered) Table and wraps the
// result in a View. A SchemaError fails only the one view that needed the
// column; an empty table yields a View with a message instead of a chart.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

const noDataMessage = "No data for the current selection."

// TimeSeriesChart is the total value per year as a line chart.
func TimeSeriesChart(t *dataset.Table, b *dataset.Binding) (*View, error) {
	agg, err := engine.GroupSum(t, b.YearColumn(), b.ValueColumn())
	if err != nil {
		return nil, err
	}
	return aggregationView("line", "Total Employees Over Time", "Year", "Total", agg), nil
}

// IndustryBarChart is the total value per industry code as a bar chart.
func IndustryBarChart(t *dataset.Table, b *dataset.Binding) (*View, error) {
	agg, err := engine.GroupSum(t, b.CodeColumn(), b.ValueColumn())
	if err != nil {
		return nil, err
	}
	return aggregationView("bar", "Total Employees by Industry", "Industry", "Total", agg), nil
}

// ComparisonBarChart is IndustryBarChart over a multi-selected subset;
// the caller filters the table first.
func ComparisonBarChart(t *dataset.Table, b *dataset.Binding) (*View, error) {
	agg, err := engine.GroupSum(t, b.CodeColumn(), b.ValueColumn())
	if err != nil {
		return nil, err
	}
	return aggregationView("bar", "Employee Comparison for Selected Industries", "Industry", "Total", agg), nil
}

// CategoryShareChart is the value share per industry category as a pie
// chart. Dataset variants without a category column get a SchemaError.
func CategoryShareChart(t *dataset.Table, b *dataset.Binding) (*View, error) {
	category, err := b.CategoryColumn()
	if err != nil {
		return nil, err
	}
	agg, err := engine.GroupSum(t, category, b.ValueColumn())
	if err != nil {
		return nil, err
	}
	view := aggregationView("pie", "Employee Distribution by Category", "", "", agg)
	if view.Chart != nil {
		view.Chart.ShowGrid = false
	}
	return view, nil
}

// CumulativeAreaChart is the running total per year as an area chart.
func CumulativeAreaChart(t *dataset.Table, b *dataset.Binding) (*View, error) {
	agg, err := engine.CumulativeSum(t, b.YearColumn(), b.ValueColumn())
	if err != nil {
		return nil, err
	}
	return aggregationView("area", "Cumulative Employees Over Time", "Year", "Cumulative Total", agg), nil
}

// ScatterChart plots every record as a raw (year, value) point.
func ScatterChart(t *dataset.Table, b *dataset.Binding) (*View, error) {
	title := "Employees vs. Year"
	if t.NumRows() == 0 {
		return &View{Type: "chart", Title: title, Message: noDataMessage}, nil
	}

	points := make([]ChartPoint, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		points = append(points, ChartPoint{
			Label: strconv.Itoa(b.Year(t, i)),
			Value: RoundTo2(b.Value(t, i)),
		})
	}

	return &View{
		Type:  "chart",
		Title: title,
		Chart: &ChartConfig{
			ChartType:  "scatter",
			Title:      title,
			XAxis:      "Year",
			YAxis:      "Employees",
			Series:     []ChartSeries{{Name: "Employees", Data: points}},
			Colors:     defaultColors[:1],
			ShowLegend: false,
			ShowGrid:   true,
		},
	}, nil
}

// aggregationView wraps an Aggregation in a single-series chart View.
func aggregationView(chartType, title, xAxis, yAxis string, agg engine.Aggregation) *View {
	if len(agg) == 0 {
		return &View{Type: "chart", Title: title, Message: noDataMessage}
	}

	points := make([]ChartPoint, 0, len(agg))
	for _, b := range agg {
		points = append(points, ChartPoint{Label: b.Key, Value: RoundTo2(b.Value)})
	}

	return &View{
		Type:  "chart",
		Title: title,
		Chart: &ChartConfig{
			ChartType:  chartType,
			Title:      title,
			XAxis:      xAxis,
			YAxis:      yAxis,
			Series:     []ChartSeries{{Name: yAxisOrValue(yAxis), Data: points}},
			Colors:     assignColors(1),
			ShowLegend: chartType == "pie",
			ShowGrid:   chartType != "pie",
		},
	}
}

func yAxisOrValue(yAxis string) string {
	if yAxis == "" {
		return "Value"
	}
	return yAxis
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
