package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRowChecksWidth(t *testing.T) {
	table := New("Year", "UK", "Wales")
	require.NoError(t, table.AddRow(2020, 1.5, 2.5))
	assert.Error(t, table.AddRow(2021, 1.5))

	rows, cols := table.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 2, cols)
	assert.Nil(t, table.Cell(5, 0))
}

func TestRoundedLeavesTextAlone(t *testing.T) {
	table := New("Year", "Region", "Value")
	require.NoError(t, table.AddRow("Header", "North East", "Total"))
	require.NoError(t, table.AddRow(2020, int64(7), 1.23456))
	require.NoError(t, table.AddRow(2021, nil, -2.5))

	rounded := table.Rounded(2)

	assert.Equal(t, "North East", rounded.Cell(0, 0))
	assert.Equal(t, "Total", rounded.Cell(0, 1))
	assert.Equal(t, int64(7), rounded.Cell(1, 0))
	assert.Equal(t, 1.23, rounded.Cell(1, 1))
	assert.Nil(t, rounded.Cell(2, 0))
	assert.Equal(t, -2.5, rounded.Cell(2, 1))

	// source table is untouched
	assert.Equal(t, 1.23456, table.Cell(1, 1))
}

func TestRoundValue(t *testing.T) {
	assert.Equal(t, 3.0, RoundValue(2.5, 0))
	assert.True(t, math.IsNaN(RoundValue(math.NaN(), 1).(float64)))
	assert.Equal(t, "n/a", RoundValue("n/a", 1))

	// Scales beyond float64 range leave the value untouched.
	assert.Equal(t, 0.0, RoundValue(0.0, 400))
	assert.Equal(t, 1e300, RoundValue(1e300, 10))
	assert.Equal(t, 2.5, RoundValue(2.5, -400))

	table := New("Year", "UK")
	require.NoError(t, table.AddRow(int64(2020), 0.0))
	assert.Empty(t, table.Rounded(400).MissingColumns())
}

func TestMissingColumns(t *testing.T) {
	table := New("Year", "A", "B", "C")
	require.NoError(t, table.AddRow(2019, 1.0, nil, 3.0))
	require.NoError(t, table.AddRow(2020, 1.0, 2.0, math.NaN()))
	require.NoError(t, table.AddRow(2021, 1.0, 2.0, 3.0))

	assert.Equal(t, []string{"B", "C"}, table.MissingColumns())

	full := New("Year", "A")
	require.NoError(t, full.AddRow(2019, "text"))
	assert.Empty(t, full.MissingColumns())
}

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Year,UK,Region",
		"Header,,North",
		"1980,12.5,7",
		"1981,NA,8",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input), "")
	require.NoError(t, err)

	assert.Equal(t, "Year", table.IndexName)
	assert.Equal(t, []string{"UK", "Region"}, table.Columns)
	assert.Equal(t, []Value{"Header", int64(1980), int64(1981)}, table.Index)
	assert.Nil(t, table.Cell(0, 0))
	assert.Equal(t, "North", table.Cell(0, 1))
	assert.Equal(t, 12.5, table.Cell(1, 0))
	assert.Equal(t, int64(7), table.Cell(1, 1))
	assert.Nil(t, table.Cell(2, 0))

	assert.Equal(t, []string{"UK"}, table.MissingColumns())
}

func TestReadCSVNamedIndex(t *testing.T) {
	input := "UK,Quarter\n1.5,2020 Q1\n2.5,2020 Q2\n"

	table, err := ReadCSV(strings.NewReader(input), "Quarter")
	require.NoError(t, err)
	assert.Equal(t, "Quarter", table.IndexName)
	assert.Equal(t, []string{"UK"}, table.Columns)
	assert.Equal(t, []Value{"2020 Q1", "2020 Q2"}, table.Index)

	_, err = ReadCSV(strings.NewReader(input), "Month")
	assert.Error(t, err)
}

func TestDiscoverCSVFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("Year,UK\n2020,1\n"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0755))

	files, err := DiscoverCSVFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.CSV"), filepath.Join(dir, "b.csv")}, files)

	tables, err := LoadCSVFiles(files, "Year")
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, int64(1), tables[0].Cell(0, 0))
}
