package roster

import (
	"path/filepath"

	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
	"github.com/xuri/excelize/v2"
)

// openWorkbook opens path, reporting any failure as a FileReadError.
func openWorkbook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	return f, nil
}

// Inspect reads every sheet of the workbook at path, in file order, and
// returns its headers, used range and first cfg.PreviewRows records.
// The file is not modified.
func Inspect(path string, cfg Config) (*models.WorkbookSummary, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	summary := &models.WorkbookSummary{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		table, err := parser.ReadTable(f, sheetName)
		if err != nil {
			return nil, &FileReadError{Path: path, Err: err}
		}
		used, err := parser.UsedRange(f, sheetName)
		if err != nil {
			return nil, &FileReadError{Path: path, Err: err}
		}
		summary.Sheets = append(summary.Sheets, models.SheetSummary{
			Name:      sheetName,
			UsedRange: used,
			Headers:   table.Headers,
			RowCount:  len(table.Records),
			Preview:   table.Head(cfg.PreviewRows),
		})
	}

	return summary, nil
}
