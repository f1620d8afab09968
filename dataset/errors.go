package dataset

import "fmt"

// LoadError reports that the source file could not be turned into a Table.
// It is fatal to startup: the dashboard has nothing to show without data.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("dataset: load failed: %v", e.Err)
	}
	return fmt.Sprintf("dataset: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError reports that a column an operation needs is absent or has the
// wrong type. Unlike LoadError it is recoverable: only the view that needed
// the column is affected.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset: column %q: %s", e.Column, e.Reason)
}

func missingColumn(name string) *SchemaError {
	return &SchemaError{Column: name, Reason: "not present in dataset"}
}

func wrongKind(name string, want, got Kind) *SchemaError {
	return &SchemaError{Column: name, Reason: fmt.Sprintf("expected %s values, found %s", want, got)}
}
