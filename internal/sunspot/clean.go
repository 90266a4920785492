// Package sunspot cleans and aggregates daily sunspot number series.
package sunspot

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names used by the helpers.
const (
	Year     = "year"
	Month    = "month"
	Day      = "day"
	Datetime = "datetime"

	DailyTotal   = "daily_total_sunspot_no"
	Observations = "no_of_obs"
)

var ErrDatetimeParts = errors.New("datetime can only be built from year, month and day; year and month; or year")

// TidyColumns lower-cases every column name and drops the named columns.
// Names in drop are matched after lower-casing.
func TidyColumns(df dataframe.DataFrame, drop []string) (dataframe.DataFrame, error) {
	df = df.Copy()
	names := df.Names()
	lower := make([]string, len(names))
	for i, n := range names {
		lower[i] = strings.ToLower(n)
	}
	if err := df.SetNames(lower...); err != nil {
		return df, fmt.Errorf("failed to rename columns: %w", err)
	}
	if len(drop) == 0 {
		return df, nil
	}

	targets := make([]string, len(drop))
	for i, d := range drop {
		targets[i] = strings.ToLower(d)
	}
	out := df.Drop(targets)
	if out.Err != nil {
		return out, fmt.Errorf("failed to drop columns %v: %w", drop, out.Err)
	}
	return out, nil
}

// WithDatetime adds a "datetime" column holding an ISO date built from parts.
// Missing month or day parts default to 1.
func WithDatetime(df dataframe.DataFrame, parts []string) (dataframe.DataFrame, error) {
	set := make(map[string]bool, len(parts))
	for _, p := range parts {
		set[p] = true
	}
	valid := len(set) == len(parts) && set[Year] &&
		((len(parts) == 3 && set[Month] && set[Day]) ||
			(len(parts) == 2 && set[Month]) ||
			len(parts) == 1)
	if !valid {
		return df, fmt.Errorf("%w: got %v", ErrDatetimeParts, parts)
	}

	years := df.Col(Year)
	if years.Err != nil {
		return df, years.Err
	}
	var months, days series.Series
	if set[Month] {
		if months = df.Col(Month); months.Err != nil {
			return df, months.Err
		}
	}
	if set[Day] {
		if days = df.Col(Day); days.Err != nil {
			return df, days.Err
		}
	}

	dates := make([]string, df.Nrow())
	for i := range dates {
		y, err := years.Elem(i).Int()
		if err != nil {
			return df, fmt.Errorf("row %d: year: %w", i, err)
		}
		m, d := 1, 1
		if set[Month] {
			if m, err = months.Elem(i).Int(); err != nil {
				return df, fmt.Errorf("row %d: month: %w", i, err)
			}
		}
		if set[Day] {
			if d, err = days.Elem(i).Int(); err != nil {
				return df, fmt.Errorf("row %d: day: %w", i, err)
			}
		}

		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		if t.Year() != y || int(t.Month()) != m || t.Day() != d {
			return df, fmt.Errorf("row %d: invalid date %04d-%02d-%02d", i, y, m, d)
		}
		dates[i] = t.Format("2006-01-02")
	}

	out := df.Mutate(series.New(dates, series.String, Datetime))
	return out, out.Err
}

// RemoveMissing drops rows whose value in col is missing or -1. A daily total
// of -1 marks a day without observations.
func RemoveMissing(df dataframe.DataFrame, col string) (dataframe.DataFrame, error) {
	s := df.Col(col)
	if s.Err != nil {
		return df, s.Err
	}

	keep := make([]bool, s.Len())
	for i := range keep {
		e := s.Elem(i)
		keep[i] = !e.IsNA() && e.Float() != -1
	}
	out := df.Subset(keep)
	return out, out.Err
}

// CleanOptions configures Clean.
type CleanOptions struct {
	Drop          []string
	DatetimeParts []string
	NotNull       string
}

// DefaultCleanOptions suits the SILSO daily total file.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		Drop:          []string{"date_in_fraction_of_year", "definitive_provisional"},
		DatetimeParts: []string{Year, Month, Day},
		NotNull:       DailyTotal,
	}
}

// Clean tidies columns, adds the datetime column and removes rows without
// an observation.
func Clean(raw dataframe.DataFrame, opts CleanOptions) (dataframe.DataFrame, error) {
	df, err := TidyColumns(raw, opts.Drop)
	if err != nil {
		return df, err
	}
	if df, err = WithDatetime(df, opts.DatetimeParts); err != nil {
		return df, err
	}
	return RemoveMissing(df, opts.NotNull)
}

// AggregatedAverage groups df by groupBy, averages the daily total into a
// column called name and sums the observation counts. Rows are sorted by the
// group keys and the datetime column is rebuilt from them.
func AggregatedAverage(df dataframe.DataFrame, groupBy []string, name string) (dataframe.DataFrame, error) {
	if len(groupBy) == 0 {
		return df, fmt.Errorf("at least one group column is required")
	}

	agg := df.Select(append(append([]string{}, groupBy...), DailyTotal, Observations))
	if agg.Err != nil {
		return agg, agg.Err
	}
	agg = agg.GroupBy(groupBy...).Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_MEAN, dataframe.Aggregation_SUM},
		[]string{DailyTotal, Observations},
	)
	if agg.Err != nil {
		return agg, fmt.Errorf("failed to aggregate by %v: %w", groupBy, agg.Err)
	}

	for _, r := range []struct{ from, to string }{{DailyTotal, name}, {Observations, Observations}} {
		col := aggregateColumn(agg.Names(), r.from)
		if col == "" {
			return agg, fmt.Errorf("aggregate of %s not found", r.from)
		}
		if col != r.to {
			agg = agg.Rename(r.to, col)
		}
	}

	orders := make([]dataframe.Order, len(groupBy))
	for i, g := range groupBy {
		orders[i] = dataframe.Sort(g)
	}
	agg = agg.Arrange(orders...)
	if agg.Err != nil {
		return agg, agg.Err
	}

	keys := append(append([]string{}, groupBy...), name, Observations)
	agg = agg.Select(keys)
	if agg.Err != nil {
		return agg, agg.Err
	}
	return WithDatetime(agg, groupBy)
}

// aggregateColumn finds the column gota produced for col, named col_<TYPE>.
func aggregateColumn(names []string, col string) string {
	var found []string
	for _, n := range names {
		if strings.HasPrefix(n, col+"_") {
			found = append(found, n)
		}
	}
	if len(found) == 0 {
		return ""
	}
	sort.Strings(found)
	return found[0]
}

// MonthlyAverages averages daily totals per calendar month.
func MonthlyAverages(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return AggregatedAverage(df, []string{Year, Month}, "monthly_mean_ssn")
}
