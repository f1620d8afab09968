package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ============================================================================
// EXPORT — Table → delimited text, compatible with the input format
// ============================================================================
// Same header, same column order, same delimiter, original cell text.
// A Table loaded from an exported Table compares equal to the original.
// ============================================================================

// Export writes t to w in the same delimited format it was loaded from.
func Export(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = t.comma

	if err := cw.Write(t.schema.Names()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for r := 0; r < t.nrows; r++ {
		if err := cw.Write(t.Row(r)); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes t to a new file at path.
func ExportFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Export(f, t); err != nil {
		return err
	}
	return f.Close()
}
