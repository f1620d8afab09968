package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportReproducesInput(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, table))

	assert.Equal(t, sampleCSV, buf.String())
}

func TestExportRoundTrip(t *testing.T) {
	original, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, original))

	reloaded, err := Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Schema(), reloaded.Schema())
	require.Equal(t, original.NumRows(), reloaded.NumRows())
	for r := 0; r < original.NumRows(); r++ {
		assert.Equal(t, original.Row(r), reloaded.Row(r))
	}
}

func TestExportSelectedRows(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	sel := table.Select([]int{0, 2})
	require.Equal(t, 2, sel.NumRows())

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sel))

	want := "Year,ISIC Rev 3,Industry_Category,Value\n" +
		"2019,A,Agriculture,10\n" +
		"2020,A,Agriculture,7\n"
	assert.Equal(t, want, buf.String())
}

func TestExportPreservesDelimiter(t *testing.T) {
	input := "Year;Value\n2019;10\n"
	table, err := Parse(strings.NewReader(input), WithComma(';'))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, table))
	assert.Equal(t, input, buf.String())
}

func TestSelectDoesNotAffectSource(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	_ = table.Select([]int{1})
	assert.Equal(t, 3, table.NumRows())
	assert.Equal(t, "2019", table.String(0, 0))
}
