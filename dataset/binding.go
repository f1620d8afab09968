package dataset

// ============================================================================
// BINDING — column-name mapping validated against a Table's schema
// ============================================================================
// The two known dataset variants disagree on column names ("Value" vs
// "Number of Employees") and on whether a category column exists at all.
// A Mapping names the columns; Bind resolves and type-checks them once so
// later access never fails mid-aggregation. The category column is optional
// at bind time — views that need it get a SchemaError, the rest keep
// working.
// ============================================================================

// Mapping names the core columns of the dataset.
type Mapping struct {
	Year     string `yaml:"year"`
	Code     string `yaml:"code"`
	Category string `yaml:"category"`
	Value    string `yaml:"value"`
}

// DefaultMapping matches the UN data export naming.
func DefaultMapping() Mapping {
	return Mapping{
		Year:     "Year",
		Code:     "ISIC Rev 3",
		Category: "Industry_Category",
		Value:    "Value",
	}
}

// merged fills empty fields from the defaults.
func (m Mapping) merged() Mapping {
	def := DefaultMapping()
	if m.Year == "" {
		m.Year = def.Year
	}
	if m.Code == "" {
		m.Code = def.Code
	}
	if m.Category == "" {
		m.Category = def.Category
	}
	if m.Value == "" {
		m.Value = def.Value
	}
	return m
}

// Binding is a Mapping resolved against one Table.
type Binding struct {
	mapping  Mapping
	year     int
	code     int
	category int // -1 when the dataset variant has no category column
	value    int
}

// Bind validates the mapping against the table's schema.
// Year must be an integer column, the value column numeric, and the code
// column present. A missing category column is not an error here.
func Bind(t *Table, m Mapping) (*Binding, error) {
	m = m.merged()
	schema := t.Schema()

	year := schema.Index(m.Year)
	if year < 0 {
		return nil, missingColumn(m.Year)
	}
	if schema[year].Kind != Int {
		return nil, wrongKind(m.Year, Int, schema[year].Kind)
	}

	code := schema.Index(m.Code)
	if code < 0 {
		return nil, missingColumn(m.Code)
	}

	value := schema.Index(m.Value)
	if value < 0 {
		return nil, missingColumn(m.Value)
	}
	if !schema[value].Kind.Numeric() {
		return nil, wrongKind(m.Value, Float, schema[value].Kind)
	}

	return &Binding{
		mapping:  m,
		year:     year,
		code:     code,
		category: schema.Index(m.Category),
		value:    value,
	}, nil
}

// YearColumn returns the bound year column name.
func (b *Binding) YearColumn() string { return b.mapping.Year }

// CodeColumn returns the bound industry-code column name.
func (b *Binding) CodeColumn() string { return b.mapping.Code }

// ValueColumn returns the bound value column name.
func (b *Binding) ValueColumn() string { return b.mapping.Value }

// CategoryColumn returns the bound category column name, or a SchemaError
// for dataset variants without one.
func (b *Binding) CategoryColumn() (string, error) {
	if b.category < 0 {
		return "", missingColumn(b.mapping.Category)
	}
	return b.mapping.Category, nil
}

// HasCategory reports whether the dataset carries a category column.
func (b *Binding) HasCategory() bool { return b.category >= 0 }

// Year returns the year of a record.
func (b *Binding) Year(t *Table, row int) int { return int(t.Int(row, b.year)) }

// Code returns the industry code of a record.
func (b *Binding) Code(t *Table, row int) string { return t.String(row, b.code) }

// Category returns the industry category of a record. Empty when the
// dataset has no category column.
func (b *Binding) Category(t *Table, row int) string {
	if b.category < 0 {
		return ""
	}
	return t.String(row, b.category)
}

// Value returns the numeric value of a record.
func (b *Binding) Value(t *Table, row int) float64 { return t.Float(row, b.value) }
