package sunspot

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailySample = `1818;01;01;1818.001;  -1; -1.0;   0;1
1818;01;02;1818.004;  65; 10.2;   1;1
1818;01;03;1818.007;  35;  8.1;   1;1
1818;02;01;1818.086;  20;  6.0;   2;1
1819;01;01;1819.001;  40;  7.1;   3;1
`

func readSample(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df, err := ReadDaily(strings.NewReader(dailySample))
	require.NoError(t, err)
	return df
}

func column(t *testing.T, df dataframe.DataFrame, name string) []string {
	t.Helper()
	s := df.Col(name)
	require.NoError(t, s.Err)
	return s.Records()
}

func TestReadDaily(t *testing.T) {
	df := readSample(t)
	assert.Equal(t, 5, df.Nrow())
	assert.Equal(t, DailyColumns, df.Names())
}

func TestReadDailyRejectsWrongShape(t *testing.T) {
	_, err := ReadDaily(strings.NewReader("1;2;3\n4;5;6\n"))
	assert.Error(t, err)
}

func TestTidyColumns(t *testing.T) {
	df, err := TidyColumns(readSample(t), []string{"Date_In_Fraction_Of_Year", "definitive_provisional"})
	require.NoError(t, err)

	assert.Equal(t, []string{"year", "month", "day", "daily_total_sunspot_no", "daily_std_dev", "no_of_obs"}, df.Names())
}

func TestWithDatetime(t *testing.T) {
	base, err := TidyColumns(readSample(t), nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		parts []string
		first string
	}{
		{"year month day", []string{"year", "month", "day"}, "1818-01-01"},
		{"year month", []string{"month", "year"}, "1818-01-01"},
		{"year", []string{"year"}, "1818-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df, err := WithDatetime(base, tt.parts)
			require.NoError(t, err)
			dates := column(t, df, Datetime)
			assert.Equal(t, tt.first, dates[0])
		})
	}

	df, err := WithDatetime(base, []string{"year", "month", "day"})
	require.NoError(t, err)
	assert.Equal(t, "1818-02-01", column(t, df, Datetime)[3])

	for _, parts := range [][]string{{"month"}, {"year", "day"}, {"year", "year"}, {}} {
		_, err := WithDatetime(base, parts)
		assert.ErrorIs(t, err, ErrDatetimeParts, "%v", parts)
	}
}

func TestRemoveMissing(t *testing.T) {
	df, err := TidyColumns(readSample(t), nil)
	require.NoError(t, err)

	df, err = RemoveMissing(df, DailyTotal)
	require.NoError(t, err)
	assert.Equal(t, 4, df.Nrow())
	assert.NotContains(t, column(t, df, DailyTotal), "-1")
}

func TestClean(t *testing.T) {
	df, err := Clean(readSample(t), DefaultCleanOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, df.Nrow())
	assert.Contains(t, df.Names(), Datetime)
	assert.NotContains(t, df.Names(), "definitive_provisional")
	assert.Equal(t, "1818-01-02", column(t, df, Datetime)[0])
}

func TestMonthlyAverages(t *testing.T) {
	clean, err := Clean(readSample(t), DefaultCleanOptions())
	require.NoError(t, err)

	df, err := MonthlyAverages(clean)
	require.NoError(t, err)

	require.Equal(t, 3, df.Nrow())
	assert.Equal(t, []string{"year", "month", "monthly_mean_ssn", "no_of_obs", "datetime"}, df.Names())
	assert.Equal(t, []string{"1818-01-01", "1818-02-01", "1819-01-01"}, column(t, df, Datetime))

	means := df.Col("monthly_mean_ssn").Float()
	assert.InDelta(t, 50.0, means[0], 1e-9)
	assert.InDelta(t, 20.0, means[1], 1e-9)

	obs := df.Col(Observations).Float()
	assert.InDelta(t, 2.0, obs[0], 1e-9)
}

func TestAggregatedAverageByYear(t *testing.T) {
	clean, err := Clean(readSample(t), DefaultCleanOptions())
	require.NoError(t, err)

	df, err := AggregatedAverage(clean, []string{Year}, "yearly_mean_ssn")
	require.NoError(t, err)

	require.Equal(t, 2, df.Nrow())
	assert.Equal(t, []string{"1818-01-01", "1819-01-01"}, column(t, df, Datetime))
	assert.InDelta(t, 40.0, df.Col("yearly_mean_ssn").Float()[0], 1e-9)

	_, err = AggregatedAverage(clean, nil, "x")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	clean, err := Clean(readSample(t), DefaultCleanOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clean.csv")
	require.NoError(t, WriteFile(path, clean))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
