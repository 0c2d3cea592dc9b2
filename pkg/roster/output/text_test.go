package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

func TestRecordsRendersNilAsNaN(t *testing.T) {
	out := Records([]string{"Grade", "Base Salary"}, []models.Record{
		{"Grade": "G1", "Base Salary": int64(5000)},
		{"Grade": "G5", "Base Salary": nil},
	})
	for _, want := range []string{"Grade", "Base Salary", "G1", "5000", "G5", "NaN"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestReportListsEveryCheck(t *testing.T) {
	report := &models.Report{}
	report.Add("sheet", false, `sheet "Salary Grades" not found`)
	report.Add("column", true, `"Grade" column found.`)

	var buf bytes.Buffer
	Report(&buf, report)
	out := buf.String()
	for _, want := range []string{"[sheet]", "[column]", "FAIL", "PASS", "Overall"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestWorkbookSummary(t *testing.T) {
	summary := &models.WorkbookSummary{
		BookName: "demo.xlsx",
		Sheets: []models.SheetSummary{{
			Name:      "Merge Demo",
			UsedRange: "A1:B2",
			Headers:   []string{"Emp ID", "Full Name"},
			RowCount:  1,
			Preview:   []models.Record{{"Emp ID": int64(1), "Full Name": "Alice"}},
		}},
	}

	var buf bytes.Buffer
	Workbook(&buf, summary, 5)
	out := buf.String()
	for _, want := range []string{"Sheet names: [Merge Demo]", "Range: A1:B2", "Columns: [Emp ID, Full Name]", "Alice"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(&models.ModifyResult{Column: "D"}, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"column":"D"`) {
		t.Errorf("unexpected JSON %s", data)
	}
}
