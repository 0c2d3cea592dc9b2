// Package parser reads sheets of an excelize workbook into tables.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ReadTable reads a sheet as a header row followed by data records.
// Row 1 supplies the headers; fully blank rows below it are skipped.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return buildTable(sheetName, rows), nil
}

// buildTable pairs each data row with the header row.
func buildTable(sheetName string, rows [][]string) *models.Table {
	table := &models.Table{Sheet: sheetName}
	if len(rows) == 0 {
		return table
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	table.Headers = HeaderNames(rows[0], width)

	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		record := make(models.Record, width)
		for colIdx, header := range table.Headers {
			var value interface{}
			if colIdx < len(row) && row[colIdx] != "" {
				value = parseValue(row[colIdx])
			}
			record[header] = value
		}
		table.Records = append(table.Records, record)
	}

	return table
}

// HeaderNames turns a header row into unique column names, padded to width.
// Unnamed columns become "Unnamed: N" (0-based) and repeated names get a
// ".1", ".2" suffix in order of appearance.
func HeaderNames(row []string, width int) []string {
	if width < len(row) {
		width = len(row)
	}
	names := make([]string, width)
	used := make(map[string]bool, width)
	counts := make(map[string]int)
	for colIdx := 0; colIdx < width; colIdx++ {
		name := ""
		if colIdx < len(row) {
			name = NormalizeHeader(row[colIdx])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(colIdx)
		}
		if used[name] {
			base := name
			for used[name] {
				counts[base]++
				name = base + "." + strconv.Itoa(counts[base])
			}
		}
		used[name] = true
		names[colIdx] = name
	}
	return names
}

// NormalizeHeader trims surrounding space and composes the name to NFC.
func NormalizeHeader(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
