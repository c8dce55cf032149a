package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"
)

type unit struct {
	ID     string
	Name   string
	Symbol string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "unit", "unit_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of unit objects
	units, err := convertDataToUnits(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the unit objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "unit", "unit_data.tmpl"), units)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = os.WriteFile("unit_data.go", code, 0o600)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToUnits(data [][]string) ([]unit, error) {
	// Sort the CSV records by item id
	sort.Slice(data, func(i, j int) bool {
		return data[i][0] < data[j][0]
	})

	units := []unit{}
	seen := map[string]bool{}
	for _, rec := range data {
		if seen[rec[0]] {
			return nil, fmt.Errorf("duplicate item id %q", rec[0])
		}
		seen[rec[0]] = true
		units = append(units, unit{
			ID:     rec[0],
			Name:   rec[1],
			Symbol: rec[2],
		})
	}
	return units, nil
}

func generateGoCode(filename string, units []unit) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, units)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}
