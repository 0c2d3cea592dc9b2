package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
	"github.com/xuri/excelize/v2"
)

// Modify adds the grade column to the primary sheet, recreates the
// reference sheet and saves the workbook back to path.
//
// Data rows start at row 2 and end at the first row whose identifier cell
// is empty; rows after an embedded blank identifier are not graded.
// A missing primary sheet is returned as a SheetNotFoundError and the file
// is left untouched.
func Modify(path string, cfg Config, log logrus.FieldLogger) (*models.ModifyResult, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Infof("Loading %s...", path)
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(cfg.PrimarySheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, &SheetNotFoundError{Sheet: cfg.PrimarySheet}
	}

	result := &models.ModifyResult{}
	result.Column, err = excelize.ColumnNumberToName(cfg.GradeColumn)
	if err != nil {
		return nil, err
	}

	if err := warnDuplicateHeader(f, cfg, log); err != nil {
		return nil, err
	}

	log.Infof("Adding %q column at %s...", cfg.GradeHeader, result.Column)
	if err := f.SetCellValue(cfg.PrimarySheet, result.Column+"1", cfg.GradeHeader); err != nil {
		return nil, err
	}

	result.Assignments, err = assignGrades(f, cfg, result.Column, log)
	if err != nil {
		return nil, err
	}

	result.ReplacedReference, err = writeReferenceSheet(f, cfg, log)
	if err != nil {
		return nil, err
	}
	result.ReferenceRows = len(cfg.ReferenceRows)

	log.Infof("Saving to %s...", path)
	if err := saveInPlace(f, path); err != nil {
		return nil, err
	}
	log.Info("Done.")

	return result, nil
}

// assignGrades writes cycle codes down the grade column until the first
// empty identifier cell.
func assignGrades(f *excelize.File, cfg Config, column string, log logrus.FieldLogger) ([]models.GradeAssignment, error) {
	var assignments []models.GradeAssignment
	for row := 2; ; row++ {
		idCell, err := excelize.CoordinatesToCellName(cfg.IDColumn, row)
		if err != nil {
			return nil, err
		}
		id, err := f.GetCellValue(cfg.PrimarySheet, idCell)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(id) == "" {
			break
		}

		grade := cfg.GradeFor(row)
		if err := f.SetCellValue(cfg.PrimarySheet, fmt.Sprintf("%s%d", column, row), grade); err != nil {
			return nil, err
		}
		log.Debugf("  Row %d: Set %s = %s", row, cfg.GradeHeader, grade)
		assignments = append(assignments, models.GradeAssignment{Row: row, Grade: grade})
	}
	return assignments, nil
}

// warnDuplicateHeader logs when the grade header already sits in another column.
func warnDuplicateHeader(f *excelize.File, cfg Config, log logrus.FieldLogger) error {
	rows, err := f.GetRows(cfg.PrimarySheet)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for colIdx, h := range rows[0] {
		if colIdx+1 != cfg.GradeColumn && parser.NormalizeHeader(h) == cfg.GradeHeader {
			name, _ := excelize.ColumnNumberToName(colIdx + 1)
			log.Warnf("%q already present in column %s of %q", cfg.GradeHeader, name, cfg.PrimarySheet)
		}
	}
	return nil
}

// writeReferenceSheet deletes any existing reference sheet and recreates it
// from the configured headers and rows. It reports whether a sheet was deleted.
func writeReferenceSheet(f *excelize.File, cfg Config, log logrus.FieldLogger) (bool, error) {
	idx, err := f.GetSheetIndex(cfg.ReferenceSheet)
	if err != nil {
		return false, err
	}
	replaced := idx >= 0
	if replaced {
		log.Infof("Sheet %s already exists. Removing it to recreate.", cfg.ReferenceSheet)
		if err := f.DeleteSheet(cfg.ReferenceSheet); err != nil {
			return false, err
		}
	}

	log.Infof("Creating new sheet: %s...", cfg.ReferenceSheet)
	if _, err := f.NewSheet(cfg.ReferenceSheet); err != nil {
		return replaced, err
	}

	headers := make([]interface{}, len(cfg.ReferenceHeaders))
	for i, h := range cfg.ReferenceHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(cfg.ReferenceSheet, "A1", &headers); err != nil {
		return replaced, err
	}
	for i, row := range cfg.ReferenceRows {
		values := append([]interface{}(nil), row...)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return replaced, err
		}
		if err := f.SetSheetRow(cfg.ReferenceSheet, cell, &values); err != nil {
			return replaced, err
		}
	}
	return replaced, nil
}

// saveInPlace writes the workbook to a temporary file next to path and
// renames it over path, so a failed write leaves the previous file intact.
func saveInPlace(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".roster-*.xlsx")
	if err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	if info, err := os.Stat(path); err == nil {
		if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
			return fmt.Errorf("save workbook: %w", err)
		}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
