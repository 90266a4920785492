package sunspot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// DailyColumns names the fields of the headerless SILSO daily total file.
var DailyColumns = []string{
	"Year", "Month", "Day", "Date_In_Fraction_Of_Year",
	"Daily_Total_Sunspot_No", "Daily_Std_Dev", "No_Of_Obs", "Definitive_Provisional",
}

// ReadDaily parses the semicolon separated SILSO daily file. Values are
// space padded in the source, so spaces are removed before parsing.
func ReadDaily(r io.Reader) (dataframe.DataFrame, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	raw = bytes.ReplaceAll(raw, []byte(" "), nil)

	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.HasHeader(false),
		dataframe.WithDelimiter(';'),
		dataframe.NaNValues([]string{"", "NA", "NaN"}),
	)
	if df.Err != nil {
		return df, df.Err
	}
	if df.Ncol() != len(DailyColumns) {
		return df, fmt.Errorf("expected %d columns, found %d", len(DailyColumns), df.Ncol())
	}
	if err := df.SetNames(DailyColumns...); err != nil {
		return df, err
	}
	return df, nil
}

// ReadFile reads a daily file from disk.
func ReadFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	df, err := ReadDaily(f)
	if err != nil {
		return df, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return df, nil
}

// WriteFile writes df as comma separated values with a header row.
func WriteFile(path string, df dataframe.DataFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := df.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
