package main

import (
	"fmt"
	"math/rand"
	"os"

	"datasetFmt/internal/dataset"
	"datasetFmt/internal/logger"
	"datasetFmt/internal/report"
	"datasetFmt/internal/template"
)

// Builds a sample workbook from configs/template.yaml with generated tables.
func main() {
	templateFile := "configs/template.yaml"
	outputFile := "my_dataset.xlsx"

	tmpl, err := template.LoadYAML(templateFile)
	if err != nil {
		logger.Error("Failed to load template", "error", err)
		fmt.Printf("Error loading template: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(42))
	national := nationalTable(rng)
	trusts := trustTable(rng)

	err = report.Produce(outputFile, tmpl, []*dataset.Table{national, trusts, trusts, trusts}, report.DefaultOptions())
	if err != nil {
		logger.Error("Failed to produce dataset", "error", err)
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("✓ Sample dataset built successfully!")
	fmt.Printf("✓ Check '%s' to see the results\n", outputFile)
}

func nationalTable(rng *rand.Rand) *dataset.Table {
	t := dataset.New("Year", "UK")
	for year := 1980; year < 2022; year++ {
		_ = t.AddRow(int64(year), rng.NormFloat64()*100)
	}
	return t
}

// trustTable has a second header row naming the region of each trust.
func trustTable(rng *rand.Rand) *dataset.Table {
	trusts := []string{"RX6", "RX7", "RX8", "RX9", "RYA", "RYC", "RYD", "RYE", "RYF", "RRU"}
	regions := []dataset.Value{
		"North East and Yorkshire", "North West", "North East and Yorkshire", "Midlands", "Midlands",
		"East of England", "South East", "South East", "South West", "London",
	}

	t := dataset.New("Year", trusts...)
	_ = t.AddRow("Region", regions...)
	for year := 1980; year < 2022; year++ {
		values := make([]dataset.Value, len(trusts))
		for i := range values {
			values[i] = rng.NormFloat64() * 100
		}
		_ = t.AddRow(int64(year), values...)
	}
	return t
}
