package present

import (
	"fmt"

	"github.com/industash/industash/dataset"
	"github.com/industash/industash/engine"
)

// ============================================================================
// TABLE BUILDER — filtered records as a render-ready table
// ============================================================================

// DataTable renders the records of t with every column of the source
// schema and a footer total over the value column. limit caps the row
// count; 0 means all rows.
func DataTable(t *dataset.Table, b *dataset.Binding, limit int) (*View, error) {
	title := "Filtered Records"
	if t.NumRows() == 0 {
		return &View{Type: "table", Title: title, Message: noDataMessage}, nil
	}

	schema := t.Schema()
	columns := make([]Column, 0, len(schema))
	for _, c := range schema {
		col := Column{Key: c.Name, Label: c.Name, Type: "text", Align: "left"}
		if c.Kind.Numeric() {
			col.Type = "number"
			col.Align = "right"
		}
		columns = append(columns, col)
	}

	n := t.NumRows()
	if limit > 0 && limit < n {
		n = limit
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, t.Row(i))
	}

	total, err := engine.Total(t, b.ValueColumn())
	if err != nil {
		return nil, err
	}

	return &View{
		Type:  "table",
		Title: title,
		Table: &TableData{
			Title:   title,
			Columns: columns,
			Rows:    rows,
			Summary: &Summary{
				Label: fmt.Sprintf("Total (%d records)", t.NumRows()),
				Values: map[string]string{
					b.ValueColumn(): FormatNumber(total),
				},
			},
		},
	}, nil
}
