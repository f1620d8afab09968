package present

import (
	"fmt"

	"github.com/industash/industash/dataset"
	"github.com/industash/industash/engine"
)

// ============================================================================
// KPI CARDS — the scalar metrics shown above the charts
// ============================================================================

// Metrics computes the three headline KPIs over t: total, average per
// record, and the total for the latest year present. Cards for undefined
// metrics (empty table) come back with Valid=false.
func Metrics(t *dataset.Table, b *dataset.Binding) (*View, error) {
	total, err := engine.Total(t, b.ValueColumn())
	if err != nil {
		return nil, err
	}

	mean, meanOK, err := engine.Mean(t, b.ValueColumn())
	if err != nil {
		return nil, err
	}

	latest, latestYear, latestOK, err := engine.LatestPeriodTotal(t, b.YearColumn(), b.ValueColumn())
	if err != nil {
		return nil, err
	}

	cards := []MetricCard{
		card("Total Employees", total, t.NumRows() > 0),
		card("Average per Record", mean, meanOK),
	}

	latestLabel := "Total Employees (latest year)"
	if latestOK {
		latestLabel = fmt.Sprintf("Total Employees (%d)", latestYear)
	}
	cards = append(cards, card(latestLabel, latest, latestOK))

	return &View{Type: "metrics", Title: "Key Performance Indicators", Metrics: cards}, nil
}

func card(label string, value float64, valid bool) MetricCard {
	c := MetricCard{Label: label, Raw: value, Valid: valid}
	if valid {
		c.Value = FormatNumber(value)
	} else {
		c.Value = "no data"
	}
	return c
}
