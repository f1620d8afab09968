package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/industash/industash/dataset"
)

const fixtureCSV = `Year,ISIC Rev 3,Industry_Category,Value
2019,A,Agriculture,10
2019,B,Mining,5
2020,A,Agriculture,7
`

func fixture(t *testing.T) (*dataset.Table, *dataset.Binding) {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(fixtureCSV))
	require.NoError(t, err)
	binding, err := dataset.Bind(table, dataset.Mapping{})
	require.NoError(t, err)
	return table, binding
}

func codes(t *testing.T, table *dataset.Table, b *dataset.Binding) []string {
	t.Helper()
	out := make([]string, 0, table.NumRows())
	for i := 0; i < table.NumRows(); i++ {
		out = append(out, b.Code(table, i))
	}
	return out
}

func TestFilterByYear(t *testing.T) {
	table, b := fixture(t)

	got, err := Filter(table, b, FilterSpec{Year: YearEquals(2019)})
	require.NoError(t, err)

	require.Equal(t, 2, got.NumRows())
	assert.Equal(t, []string{"A", "B"}, codes(t, got, b))
}

func TestFilterOverallIsIdentity(t *testing.T) {
	table, b := fixture(t)

	got, err := Filter(table, b, FilterSpec{})
	require.NoError(t, err)
	assert.Equal(t, table.NumRows(), got.NumRows())
}

func TestFilterBySingleCode(t *testing.T) {
	table, b := fixture(t)

	got, err := Filter(table, b, FilterSpec{Code: "A"})
	require.NoError(t, err)
	require.Equal(t, 2, got.NumRows())
	assert.Equal(t, 2019, b.Year(got, 0))
	assert.Equal(t, 2020, b.Year(got, 1))
}

func TestFilterByMembership(t *testing.T) {
	table, b := fixture(t)

	got, err := Filter(table, b, FilterSpec{Codes: []string{"A", "B"}})
	require.NoError(t, err)
	assert.Equal(t, 3, got.NumRows())

	got, err = Filter(table, b, FilterSpec{Categories: []string{"Mining"}})
	require.NoError(t, err)
	require.Equal(t, 1, got.NumRows())
	assert.Equal(t, "B", b.Code(got, 0))
}

func TestFilterEmptySelectionMatchesNothing(t *testing.T) {
	table, b := fixture(t)

	// A non-nil empty selection is an explicit "nothing selected", not the
	// identity. This is the classic silent-empty-chart bug the other way
	// around, so it is pinned here.
	got, err := Filter(table, b, FilterSpec{Codes: []string{}})
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumRows())

	got, err = Filter(table, b, FilterSpec{Categories: []string{}})
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumRows())
}

func TestFilterUnknownValuesYieldEmpty(t *testing.T) {
	table, b := fixture(t)

	for _, spec := range []FilterSpec{
		{Year: YearEquals(1900)},
		{Code: "ZZ"},
		{Codes: []string{"ZZ"}},
		{Categories: []string{"Fishing"}},
	} {
		got, err := Filter(table, b, spec)
		require.NoError(t, err)
		assert.Equal(t, 0, got.NumRows())
	}
}

func TestFilterCompositionIsOrderIndependent(t *testing.T) {
	table, b := fixture(t)

	a := FilterSpec{Year: YearEquals(2019)}
	c := FilterSpec{Codes: []string{"A"}}

	ab, err := Filter(table, b, a)
	require.NoError(t, err)
	ab, err = Filter(ab, b, c)
	require.NoError(t, err)

	ba, err := Filter(table, b, c)
	require.NoError(t, err)
	ba, err = Filter(ba, b, a)
	require.NoError(t, err)

	combined, err := Filter(table, b, a.And(c))
	require.NoError(t, err)

	require.Equal(t, 1, ab.NumRows())
	assert.Equal(t, codes(t, ab, b), codes(t, ba, b))
	assert.Equal(t, codes(t, ab, b), codes(t, combined, b))
}

func TestFilterPreservesRecordOrder(t *testing.T) {
	table, b := fixture(t)

	got, err := Filter(table, b, FilterSpec{Code: "A"})
	require.NoError(t, err)
	years := []int{b.Year(got, 0), b.Year(got, 1)}
	assert.Equal(t, []int{2019, 2020}, years)
}

func TestFilterCategoryWithoutCategoryColumn(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader("Year,ISIC Rev 3,Value\n2019,A,10\n"))
	require.NoError(t, err)
	b, err := dataset.Bind(table, dataset.Mapping{})
	require.NoError(t, err)

	_, err = Filter(table, b, FilterSpec{Categories: []string{"Mining"}})
	var schemaErr *dataset.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestAndContradictoryEqualities(t *testing.T) {
	table, b := fixture(t)

	spec := FilterSpec{Year: YearEquals(2019)}.And(FilterSpec{Year: YearEquals(2020)})
	got, err := Filter(table, b, spec)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumRows())
}

func TestAndIntersectsMemberships(t *testing.T) {
	table, b := fixture(t)

	spec := FilterSpec{Codes: []string{"A", "B"}}.And(FilterSpec{Codes: []string{"B"}})
	got, err := Filter(table, b, spec)
	require.NoError(t, err)
	require.Equal(t, 1, got.NumRows())
	assert.Equal(t, "B", b.Code(got, 0))
}
