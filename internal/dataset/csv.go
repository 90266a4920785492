package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MissingMarkers are the CSV cell values read as missing data.
var MissingMarkers = []string{"", "NA", "N/A", "NaN", "nan", "null"}

// ReadCSVFile loads a data table from a CSV file. See ReadCSV.
func ReadCSVFile(path, indexColumn string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer file.Close()

	table, err := ReadCSV(file, indexColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	return table, nil
}

// ReadCSV loads a data table from CSV with a header row. indexColumn names the
// row index column; when empty the first column is used.
func ReadCSV(r io.Reader, indexColumn string) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(MissingMarkers),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	return FromDataFrame(df, indexColumn)
}

// FromDataFrame converts a gota dataframe into a table. Numeric strings become
// int64 or float64, missing elements become nil.
func FromDataFrame(df dataframe.DataFrame, indexColumn string) (*Table, error) {
	names := df.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("dataframe has no columns")
	}
	if indexColumn == "" {
		indexColumn = names[0]
	}

	var columns []string
	found := false
	for _, name := range names {
		if name == indexColumn {
			found = true
			continue
		}
		columns = append(columns, name)
	}
	if !found {
		return nil, fmt.Errorf("index column %q not found", indexColumn)
	}

	table := New(indexColumn, columns...)
	index := df.Col(indexColumn)
	for i := 0; i < df.Nrow(); i++ {
		values := make([]Value, len(columns))
		for j, name := range columns {
			values[j] = elementValue(df.Col(name).Elem(i))
		}
		if err := table.AddRow(elementValue(index.Elem(i)), values...); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func elementValue(e series.Element) Value {
	if e.IsNA() {
		return nil
	}
	switch e.Type() {
	case series.Float:
		return e.Float()
	case series.Int:
		if v, err := e.Int(); err == nil {
			return int64(v)
		}
	case series.Bool:
		if v, err := e.Bool(); err == nil {
			return v
		}
	}
	return parseNumericValue(e.String())
}

// parseNumericValue attempts to parse a string as a number and returns the
// appropriate type, or the original string if it's not a valid number
func parseNumericValue(value string) Value {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}

	if intVal, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return intVal
	}

	if floatVal, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return floatVal
	}

	return value
}
