package present

// ============================================================================
// PRESENT TYPES — render-ready payloads for the frontend
// ============================================================================
// The core never draws anything. It hands the Presentation Adapter (the
// web frontend) ChartConfig / TableData / MetricCard payloads that map
// directly onto its charting calls. The shapes stay stable so the frontend
// works unchanged across backend revisions.
// ============================================================================

// View is one dashboard panel, ready to render.
// Exactly one of Chart, Table, or Metrics is populated based on Type.
// Message is set instead when there is nothing to draw — an empty filter
// result is a valid state, not a failure.
type View struct {
	Type    string       `json:"type"` // "chart", "table", "metrics"
	Title   string       `json:"title"`
	Chart   *ChartConfig `json:"chart,omitempty"`
	Table   *TableData   `json:"table,omitempty"`
	Metrics []MetricCard `json:"metrics,omitempty"`
	Message string       `json:"message,omitempty"`
}

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "line", "bar", "pie", "scatter", "area"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries is one data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

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
	Align string `json:"align"` // "left", "right"
}

// Summary carries footer totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// MetricCard is one scalar KPI with its display label.
// Valid is false when the metric is undefined (empty selection); the
// frontend shows "no data" instead of the value.
type MetricCard struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Raw   float64 `json:"raw"`
	Valid bool    `json:"valid"`
}
