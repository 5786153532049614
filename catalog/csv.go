package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/toolscout/core"
)

// CSV column headers expected in the catalog file.
const (
	columnName     = "Tool Name"
	columnCategory = "Category"
	columnPricing  = "Pricing"
	columnSummary  = "Summary"
)

// LoadCSV reads a tool catalog from the CSV file at path.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads a tool catalog from CSV data.
// The first row must be a header containing the Tool Name, Category,
// Pricing and Summary columns. Extra columns are ignored. Rows with an
// empty tool name are skipped.
func ReadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyCatalog
		}
		return nil, err
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []*core.ToolRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		name := fieldAt(row, cols.name)
		if name == "" {
			continue
		}

		records = append(records, &core.ToolRecord{
			Name:     name,
			Category: fieldAt(row, cols.category),
			Pricing:  fieldAt(row, cols.pricing),
			Summary:  fieldAt(row, cols.summary),
		})
	}

	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	return New(records), nil
}

type columnIndices struct {
	name     int
	category int
	pricing  int
	summary  int
}

// resolveColumns maps required column names to their header positions.
func resolveColumns(header []string) (columnIndices, error) {
	cols := columnIndices{name: -1, category: -1, pricing: -1, summary: -1}

	for i, h := range header {
		switch strings.TrimSpace(h) {
		case columnName:
			cols.name = i
		case columnCategory:
			cols.category = i
		case columnPricing:
			cols.pricing = i
		case columnSummary:
			cols.summary = i
		}
	}

	for _, req := range []struct {
		name  string
		index int
	}{
		{columnName, cols.name},
		{columnCategory, cols.category},
		{columnPricing, cols.pricing},
		{columnSummary, cols.summary},
	} {
		if req.index < 0 {
			return cols, fmt.Errorf("%w: %s", ErrMissingColumn, req.name)
		}
	}

	return cols, nil
}

// fieldAt returns the trimmed field at index, or "" if the row is short.
func fieldAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
