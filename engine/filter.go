package engine

import (
	"github.com/industash/industash/dataset"
)

// ============================================================================
// FILTER — predicate composition over the loaded Table
// ============================================================================
// Single pass: every record is checked against all active predicates at
// once, so applying predicates in any order yields the same result set.
// Filtering produces a new Table with relative record order preserved;
// the source Table is never touched.
// ============================================================================

// FilterSpec is a set of predicates over the core columns.
//
// A nil Year and empty Code mean "no restriction". The membership fields
// distinguish absent from empty: a nil slice applies no restriction, while
// a non-nil empty slice is an empty selection and matches nothing.
type FilterSpec struct {
	Year       *int     `json:"year,omitempty"`
	Code       string   `json:"code,omitempty"`
	Codes      []string `json:"codes,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// YearEquals builds a year-equality predicate value for FilterSpec.Year.
func YearEquals(year int) *int { return &year }

// IsEmpty reports whether no predicate is active.
func (s FilterSpec) IsEmpty() bool {
	return s.Year == nil && s.Code == "" && s.Codes == nil && s.Categories == nil
}

// And combines two specs into one that matches records passing both.
// Where both restrict the same column, membership sets intersect and
// equality predicates must agree (disagreement yields a match-nothing spec).
func (s FilterSpec) And(other FilterSpec) FilterSpec {
	out := FilterSpec{}

	switch {
	case s.Year == nil:
		out.Year = other.Year
	case other.Year == nil:
		out.Year = s.Year
	case *s.Year == *other.Year:
		out.Year = s.Year
	default:
		// Contradictory year equalities: empty selection on codes makes
		// the combined spec match nothing.
		out.Codes = []string{}
		return out
	}

	switch {
	case s.Code == "":
		out.Code = other.Code
	case other.Code == "" || other.Code == s.Code:
		out.Code = s.Code
	default:
		out.Codes = []string{}
		return out
	}

	out.Codes = intersectMembership(s.Codes, other.Codes)
	out.Categories = intersectMembership(s.Categories, other.Categories)
	return out
}

func intersectMembership(a, b []string) []string {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

// Filter returns a new Table containing the records of t that match every
// active predicate of spec. Values not present in the table simply match
// nothing. A category predicate on a dataset without a category column is
// a SchemaError.
func Filter(t *dataset.Table, b *dataset.Binding, spec FilterSpec) (*dataset.Table, error) {
	if spec.Categories != nil {
		if _, err := b.CategoryColumn(); err != nil {
			return nil, err
		}
	}

	if spec.IsEmpty() {
		return t, nil
	}

	var codeSet, categorySet map[string]bool
	if spec.Codes != nil {
		codeSet = toSet(spec.Codes)
	}
	if spec.Categories != nil {
		categorySet = toSet(spec.Categories)
	}

	indices := make([]int, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		if spec.Year != nil && b.Year(t, i) != *spec.Year {
			continue
		}
		if spec.Code != "" && b.Code(t, i) != spec.Code {
			continue
		}
		if codeSet != nil && !codeSet[b.Code(t, i)] {
			continue
		}
		if categorySet != nil && !categorySet[b.Category(t, i)] {
			continue
		}
		indices = append(indices, i)
	}

	return t.Select(indices), nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
