package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ============================================================================
// LOADER — delimited file → Table
// ============================================================================
// The whole file is read up front: the dataset is static for the process
// lifetime and every view derives from this one load. Column kinds are
// inferred from content (see schema.go). Any structural defect — missing
// file, no header, inconsistent field counts — is a LoadError.
// ============================================================================

// Load reads a delimited file into an immutable Table.
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := Parse(f, opts...)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return t, nil
}

// Parse reads delimited data from r into a Table. The first row is the
// header; every data row must have the same field count.
func Parse(r io.Reader, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	cr := csv.NewReader(r)
	cr.Comma = cfg.Comma

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader enforces consistent field counts; surface the
			// malformed row instead of silently dropping it.
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}

	schema := inferSchema(headers, rows)
	return newTable(schema, rows, cfg.Comma), nil
}
