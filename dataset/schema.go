package dataset

import (
	"strconv"
	"strings"
)

// ============================================================================
// SCHEMA — typed column descriptors inferred once at load time
// ============================================================================
// Every Table carries an ordered list of (name, kind) pairs. Column kinds
// are inferred from content: a column is Int or Float only if every
// non-empty cell parses as one. Everything else stays String.
// ============================================================================

// Kind is the inferred type of a column.
type Kind int

const (
	String Kind = iota
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "string"
	}
}

// Numeric reports whether the kind supports aggregation.
func (k Kind) Numeric() bool { return k == Int || k == Float }

// Column describes one column of a Table.
type Column struct {
	Name string
	Kind Kind
}

// Schema is the ordered column set shared by every record of a Table.
type Schema []Column

// Index returns the position of the named column, or -1.
// Matching ignores case and surrounding whitespace so that config-provided
// names line up with headers regardless of export quirks.
func (s Schema) Index(name string) int {
	want := normalizeName(name)
	for i, c := range s {
		if normalizeName(c.Name) == want {
			return i
		}
	}
	return -1
}

// Names returns the header row in column order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// inferSchema classifies each column by sampling every cell.
// Empty cells do not vote: a column of {"10", "", "7"} is still Int.
// A column with no non-empty cells defaults to String.
func inferSchema(headers []string, rows [][]string) Schema {
	schema := make(Schema, len(headers))
	for col, h := range headers {
		kind := String
		seen := false
		isInt, isFloat := true, true
		for _, row := range rows {
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			seen = true
			if isInt {
				if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
					isInt = false
				}
			}
			if !isInt && isFloat {
				if _, err := strconv.ParseFloat(cell, 64); err != nil {
					isFloat = false
					break
				}
			}
		}
		if seen {
			switch {
			case isInt:
				kind = Int
			case isFloat:
				kind = Float
			}
		}
		schema[col] = Column{Name: h, Kind: kind}
	}
	return schema
}
