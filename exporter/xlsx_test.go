package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/industash/industash/dataset"
)

const fixtureCSV = `Year,ISIC Rev 3,Industry_Category,Value
2019,A,Agriculture,10
2019,B,Mining,5
2020,A,Agriculture,7
`

func TestWriteXLSX(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader(fixtureCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, table))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Year", "ISIC Rev 3", "Industry_Category", "Value"}, rows[0])
	assert.Equal(t, []string{"2019", "A", "Agriculture", "10"}, rows[1])
	assert.Equal(t, []string{"2020", "A", "Agriculture", "7"}, rows[3])
}

func TestWriteXLSXEmptyTable(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader("Year,Value\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, table))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Year", "Value"}, rows[0])
}
