package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/industash/industash/dataset"
)

func TestGroupSumByYear(t *testing.T) {
	table, _ := fixture(t)

	agg, err := GroupSum(table, "Year", "Value")
	require.NoError(t, err)

	assert.Equal(t, Aggregation{
		{Key: "2019", Value: 15},
		{Key: "2020", Value: 7},
	}, agg)
}

func TestGroupSumByCodeLexicographic(t *testing.T) {
	table, _ := fixture(t)

	agg, err := GroupSum(table, "ISIC Rev 3", "Value")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, agg.Keys())
	assert.Equal(t, float64(17), agg[0].Value)
	assert.Equal(t, float64(5), agg[1].Value)
}

func TestGroupMean(t *testing.T) {
	table, _ := fixture(t)

	agg, err := GroupMean(table, "Year", "Value")
	require.NoError(t, err)

	require.Len(t, agg, 2)
	assert.InDelta(t, 7.5, agg[0].Value, 1e-9)
	assert.InDelta(t, 7.0, agg[1].Value, 1e-9)
}

func TestGroupSumOmitsEmptyGroups(t *testing.T) {
	table, b := fixture(t)

	filtered, err := Filter(table, b, FilterSpec{Code: "A"})
	require.NoError(t, err)

	agg, err := GroupSum(filtered, "ISIC Rev 3", "Value")
	require.NoError(t, err)

	// "B" has no records in the filtered view: no zero placeholder.
	assert.Equal(t, []string{"A"}, agg.Keys())
}

func TestCumulativeSum(t *testing.T) {
	table, _ := fixture(t)

	agg, err := CumulativeSum(table, "Year", "Value")
	require.NoError(t, err)

	assert.Equal(t, Aggregation{
		{Key: "2019", Value: 15},
		{Key: "2020", Value: 22},
	}, agg)
}

func TestCumulativeLastEqualsTotal(t *testing.T) {
	table, _ := fixture(t)

	agg, err := CumulativeSum(table, "Year", "Value")
	require.NoError(t, err)
	total, err := Total(table, "Value")
	require.NoError(t, err)

	require.NotEmpty(t, agg)
	assert.Equal(t, total, agg[len(agg)-1].Value)
}

func TestGroupSumConsistentWithTotal(t *testing.T) {
	table, _ := fixture(t)

	agg, err := GroupSum(table, "ISIC Rev 3", "Value")
	require.NoError(t, err)
	total, err := Total(table, "Value")
	require.NoError(t, err)

	var sum float64
	for _, b := range agg {
		sum += b.Value
	}
	assert.Equal(t, total, sum)
}

func TestScalarKPIs(t *testing.T) {
	table, _ := fixture(t)

	total, err := Total(table, "Value")
	require.NoError(t, err)
	assert.Equal(t, float64(22), total)

	mean, ok, err := Mean(table, "Value")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 22.0/3.0, mean, 1e-9)

	latest, year, ok, err := LatestPeriodTotal(table, "Year", "Value")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2020, year)
	assert.Equal(t, float64(7), latest)
}

func TestMeanOnEmptyTableReportsNoData(t *testing.T) {
	table, b := fixture(t)

	empty, err := Filter(table, b, FilterSpec{Code: "ZZ"})
	require.NoError(t, err)
	require.Equal(t, 0, empty.NumRows())

	_, ok, err := Mean(empty, "Value")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, ok, err = LatestPeriodTotal(empty, "Year", "Value")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAggregationOnMissingColumn(t *testing.T) {
	table, _ := fixture(t)

	var schemaErr *dataset.SchemaError

	_, err := GroupSum(table, "Region", "Value")
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Region", schemaErr.Column)

	_, err = GroupSum(table, "Year", "Industry_Category")
	require.ErrorAs(t, err, &schemaErr)

	_, err = Total(table, "ISIC Rev 3")
	require.ErrorAs(t, err, &schemaErr)
}

func TestDistinct(t *testing.T) {
	table, _ := fixture(t)

	years, err := Distinct(table, "Year")
	require.NoError(t, err)
	assert.Equal(t, []string{"2019", "2020"}, years)

	codesList, err := Distinct(table, "ISIC Rev 3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, codesList)
}

func TestNumericKeyOrderIsNumeric(t *testing.T) {
	// Lexicographic order would put "999" after "1000".
	table, err := dataset.Parse(strings.NewReader("Year,ISIC Rev 3,Value\n1000,A,1\n999,A,2\n"))
	require.NoError(t, err)

	agg, err := GroupSum(table, "Year", "Value")
	require.NoError(t, err)
	assert.Equal(t, []string{"999", "1000"}, agg.Keys())
}

func TestAggregationIsPure(t *testing.T) {
	table, _ := fixture(t)

	first, err := GroupSum(table, "Year", "Value")
	require.NoError(t, err)
	second, err := GroupSum(table, "Year", "Value")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
