package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverCSVFiles returns all .csv files directly inside dir, sorted by name
// so that their order lines up with the template's table metadata.
func DiscoverCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) == ".csv" {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadCSVFiles reads every path as a data table, keeping the order given.
func LoadCSVFiles(paths []string, indexColumn string) ([]*Table, error) {
	tables := make([]*Table, 0, len(paths))
	for _, path := range paths {
		table, err := ReadCSVFile(path, indexColumn)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}
