// Package models defines data structures shared by the roster tools.
package models

// Record is one data row keyed by header name.
// Empty cells are present with a nil value.
type Record map[string]interface{}

// Table is a sheet read as header row plus data records.
type Table struct {
	// Sheet is the source sheet name.
	Sheet string `json:"sheet"`
	// Headers are the row-1 column names in column order.
	Headers []string `json:"headers"`
	// Records holds the non-blank data rows in sheet order.
	Records []Record `json:"records"`
}

// HasColumn reports whether name is one of the table headers.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Head returns at most n leading records.
func (t *Table) Head(n int) []Record {
	if n < 0 || n > len(t.Records) {
		n = len(t.Records)
	}
	return t.Records[:n]
}
