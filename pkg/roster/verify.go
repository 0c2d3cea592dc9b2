package roster

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/roster-go/pkg/roster/join"
	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
	"github.com/xuri/excelize/v2"
)

// Check names used in verification reports.
const (
	CheckOpen   = "open"
	CheckSheet  = "sheet"
	CheckColumn = "column"
	CheckJoin   = "join"
)

// Verify re-reads the workbook at path and reports on each check
// independently. It never returns an error: failures become FAIL verdicts.
//
// The join check only inspects the first joined row. Rows further down
// that found no reference match are counted in Report.Unmatched but do
// not fail the check.
func Verify(path string, cfg Config, log logrus.FieldLogger) *models.Report {
	if log == nil {
		log = logrus.StandardLogger()
	}
	report := &models.Report{}

	log.Infof("Verifying %s...", path)
	f, err := openWorkbook(path)
	if err != nil {
		report.Add(CheckOpen, false, err.Error())
		return report
	}
	defer f.Close()

	refOK := hasSheet(f, cfg.ReferenceSheet)
	if refOK {
		report.Add(CheckSheet, true, fmt.Sprintf("%q sheet found.", cfg.ReferenceSheet))
	} else {
		report.Add(CheckSheet, false, (&SheetNotFoundError{Sheet: cfg.ReferenceSheet}).Error())
	}

	primary, err := readSheet(f, cfg.PrimarySheet)
	if err != nil {
		report.Add(CheckColumn, false, err.Error())
	} else if !primary.HasColumn(cfg.GradeHeader) {
		report.Add(CheckColumn, false, (&ColumnMissingError{Sheet: cfg.PrimarySheet, Column: cfg.GradeHeader}).Error())
	} else {
		report.Add(CheckColumn, true, fmt.Sprintf("%q column found.", cfg.GradeHeader))
		report.GradePreview = project(primary, cfg.DisplayColumns, cfg.PreviewRows)
	}

	// The join depends on both sheets; without them it is not attempted.
	if !refOK || primary == nil {
		return report
	}
	reference, err := readSheet(f, cfg.ReferenceSheet)
	if err != nil {
		report.Add(CheckJoin, false, err.Error())
		return report
	}
	report.Reference = reference

	res, err := join.Left(primary, reference, cfg.GradeHeader, cfg.JoinKey)
	if err != nil {
		report.Add(CheckJoin, false, err.Error())
		return report
	}
	report.JoinedRows = len(res.Table.Records)
	report.Unmatched = res.Unmatched()
	report.Joined = project(res.Table, cfg.DisplayColumns, cfg.PreviewRows)
	if report.Unmatched > 0 {
		log.Warnf("%d of %d joined rows have no %q match", report.Unmatched, report.JoinedRows, cfg.JoinKey)
	}

	switch {
	case len(res.Table.Records) == 0:
		report.Add(CheckJoin, false, fmt.Sprintf("%q has no data rows to join.", cfg.PrimarySheet))
	case res.Table.Records[0][cfg.CheckField] == nil:
		report.Add(CheckJoin, false, "Merge failed or no match found for first row.")
	default:
		report.Add(CheckJoin, true, "Merge successful, data populated.")
	}

	return report
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

func readSheet(f *excelize.File, name string) (*models.Table, error) {
	if !hasSheet(f, name) {
		return nil, &SheetNotFoundError{Sheet: name}
	}
	return parser.ReadTable(f, name)
}

// project returns the first n records of t limited to the listed columns
// that t actually has.
func project(t *models.Table, columns []string, n int) *models.Table {
	out := &models.Table{Sheet: t.Sheet}
	for _, c := range columns {
		if t.HasColumn(c) {
			out.Headers = append(out.Headers, c)
		}
	}
	for _, rec := range t.Head(n) {
		r := make(models.Record, len(out.Headers))
		for _, h := range out.Headers {
			r[h] = rec[h]
		}
		out.Records = append(out.Records, r)
	}
	return out
}
