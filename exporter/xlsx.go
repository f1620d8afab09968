// Package exporter writes Tables to download formats beyond the native
// delimited text (which lives next to the loader in package dataset).
package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/industash/industash/dataset"
)

const sheetName = "Data"

// WriteXLSX writes t as an Excel workbook with one sheet: a header row
// followed by one row per record. Numeric columns become numeric cells so
// spreadsheet formulas work on the export.
func WriteXLSX(w io.Writer, t *dataset.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("exporter: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("exporter: drop default sheet: %w", err)
	}

	schema := t.Schema()
	for c, col := range schema {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("exporter: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col.Name); err != nil {
			return fmt.Errorf("exporter: write header: %w", err)
		}
	}

	for r := 0; r < t.NumRows(); r++ {
		for c, col := range schema {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("exporter: data cell: %w", err)
			}
			var value interface{}
			switch {
			case t.String(r, c) == "":
				continue
			case col.Kind == dataset.Int:
				value = t.Int(r, c)
			case col.Kind == dataset.Float:
				value = t.Float(r, c)
			default:
				value = t.String(r, c)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("exporter: write row %d: %w", r+1, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("exporter: write workbook: %w", err)
	}
	return nil
}
