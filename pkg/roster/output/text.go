package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

var (
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3FB950"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F85149"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Records renders records as a bordered table with the given column order.
// Nil values are shown as "NaN".
func Records(headers []string, records []models.Record) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, rec := range records {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = FormatValue(rec[h])
		}
		t.Row(row...)
	}
	return t.String()
}

// FormatValue renders one cell value.
func FormatValue(v interface{}) string {
	if v == nil {
		return "NaN"
	}
	return fmt.Sprint(v)
}

// Workbook writes the inspector summary.
func Workbook(w io.Writer, summary *models.WorkbookSummary, previewRows int) {
	fmt.Fprintf(w, "Sheet names: [%s]\n", strings.Join(summary.SheetNames(), ", "))
	for _, sheet := range summary.Sheets {
		fmt.Fprintf(w, "\n%s\n", titleStyle.Render("--- Sheet: "+sheet.Name+" ---"))
		if sheet.UsedRange != "" {
			fmt.Fprintf(w, "Range: %s (%d data rows)\n", sheet.UsedRange, sheet.RowCount)
		}
		fmt.Fprintf(w, "Columns: [%s]\n", strings.Join(sheet.Headers, ", "))
		fmt.Fprintf(w, "First %d rows:\n", previewRows)
		if len(sheet.Headers) > 0 {
			fmt.Fprintln(w, Records(sheet.Headers, sheet.Preview))
		}
		fmt.Fprintln(w, strings.Repeat("-", 30))
	}
}

// Modification writes the modifier result.
func Modification(w io.Writer, res *models.ModifyResult) {
	fmt.Fprintf(w, "Grade column: %s (%d rows graded)\n", res.Column, len(res.Assignments))
	for _, a := range res.Assignments {
		fmt.Fprintf(w, "  Row %d: %s\n", a.Row, a.Grade)
	}
	verb := "created"
	if res.ReplacedReference {
		verb = "recreated"
	}
	fmt.Fprintf(w, "Reference sheet %s with %d rows\n", verb, res.ReferenceRows)
}

// Verdict renders "PASS" or "FAIL".
func Verdict(passed bool) string {
	if passed {
		return passStyle.Render("PASS")
	}
	return failStyle.Render("FAIL")
}

// Report writes the verifier report: one verdict line per check followed by
// the preview tables that were produced.
func Report(w io.Writer, report *models.Report) {
	for _, c := range report.Checks {
		fmt.Fprintf(w, "%s: [%s] %s\n", Verdict(c.Passed), c.Name, c.Message)
	}
	if report.GradePreview != nil {
		fmt.Fprintln(w, Records(report.GradePreview.Headers, report.GradePreview.Records))
	}
	if report.Reference != nil {
		fmt.Fprintf(w, "\n%s Content:\n", report.Reference.Sheet)
		fmt.Fprintln(w, Records(report.Reference.Headers, report.Reference.Records))
	}
	if report.Joined != nil {
		fmt.Fprintf(w, "\nTest Merge (Left Join), %d rows, %d unmatched:\n", report.JoinedRows, report.Unmatched)
		fmt.Fprintln(w, Records(report.Joined.Headers, report.Joined.Records))
	}
	fmt.Fprintf(w, "\nOverall: %s\n", Verdict(report.Passed()))
}
