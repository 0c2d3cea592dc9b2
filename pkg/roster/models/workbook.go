package models

// SheetSummary describes one sheet as seen by the inspector.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// UsedRange is the bounding range of populated cells, e.g. "A1:C6".
	UsedRange string `json:"used_range,omitempty"`
	// Headers are the row-1 column names.
	Headers []string `json:"headers"`
	// RowCount is the number of data records below the header row.
	RowCount int `json:"row_count"`
	// Preview holds the first few data records.
	Preview []Record `json:"preview"`
}

// WorkbookSummary is the inspector's view of a workbook, sheets in file order.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheet summaries in workbook order.
	Sheets []SheetSummary `json:"sheets"`
}

// SheetNames returns the sheet names in workbook order.
func (w *WorkbookSummary) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}
