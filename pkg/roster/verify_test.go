package roster

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func modifiedWorkbook(t *testing.T) string {
	t.Helper()
	path := demoWorkbook(t)
	if _, err := Modify(path, DefaultConfig(), quietLogger()); err != nil {
		t.Fatalf("Modify failed: %v", err)
	}
	return path
}

func TestVerifyAfterModify(t *testing.T) {
	path := modifiedWorkbook(t)

	report := Verify(path, DefaultConfig(), quietLogger())
	for _, name := range []string{CheckSheet, CheckColumn, CheckJoin} {
		c, ok := report.Find(name)
		if !ok {
			t.Fatalf("check %q not attempted", name)
		}
		if !c.Passed {
			t.Errorf("check %q failed: %s", name, c.Message)
		}
	}
	if !report.Passed() {
		t.Error("Expected report to pass")
	}
	if report.JoinedRows != 5 {
		t.Errorf("Expected 5 joined rows, got %d", report.JoinedRows)
	}
	if report.Unmatched != 0 {
		t.Errorf("Expected no unmatched rows, got %d", report.Unmatched)
	}

	want := []int64{5000, 8000, 12000, 5000, 8000}
	for i, rec := range report.Joined.Records {
		if rec["Base Salary"] != want[i] {
			t.Errorf("row %d: Base Salary = %v, expected %d", i, rec["Base Salary"], want[i])
		}
	}
	if len(report.Reference.Records) != 4 {
		t.Errorf("Expected 4 reference rows, got %d", len(report.Reference.Records))
	}
	if !report.GradePreview.HasColumn("Full Name") || !report.GradePreview.HasColumn("Grade") {
		t.Errorf("unexpected grade preview headers %v", report.GradePreview.Headers)
	}
}

func TestVerifyBeforeModify(t *testing.T) {
	path := demoWorkbook(t)

	report := Verify(path, DefaultConfig(), quietLogger())
	if c, ok := report.Find(CheckSheet); !ok || c.Passed {
		t.Errorf("Expected failed sheet check, got %+v", c)
	}
	// The column check does not depend on the reference sheet.
	if c, ok := report.Find(CheckColumn); !ok || c.Passed {
		t.Errorf("Expected failed column check, got %+v", c)
	}
	if _, ok := report.Find(CheckJoin); ok {
		t.Error("Expected join check skipped without reference sheet")
	}
	if report.Passed() {
		t.Error("Expected report to fail")
	}
}

func TestVerifyColumnCheckIndependentOfSheetCheck(t *testing.T) {
	path := demoWorkbook(t)
	cfg := DefaultConfig()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f.SetCellValue(cfg.PrimarySheet, "D1", "Grade")
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	report := Verify(path, cfg, quietLogger())
	if c, _ := report.Find(CheckSheet); c.Passed {
		t.Error("Expected sheet check to fail")
	}
	if c, _ := report.Find(CheckColumn); !c.Passed {
		t.Errorf("Expected column check to pass, got %q", c.Message)
	}
}

func TestVerifyUnmatchedRowKeepsSmokeTestPass(t *testing.T) {
	path := modifiedWorkbook(t)
	cfg := DefaultConfig()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f.SetSheetRow(cfg.PrimarySheet, "A7", &[]interface{}{6, "Frank Moore", 101, "G5"})
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	report := Verify(path, cfg, quietLogger())
	if report.JoinedRows != 6 {
		t.Fatalf("Expected all 6 primary rows preserved, got %d", report.JoinedRows)
	}
	if report.Unmatched != 1 {
		t.Errorf("Expected 1 unmatched row, got %d", report.Unmatched)
	}
	if c, _ := report.Find(CheckJoin); !c.Passed {
		t.Errorf("Expected join smoke test to pass on first row, got %q", c.Message)
	}
}

func TestVerifyFirstRowUnmatchedFails(t *testing.T) {
	path := modifiedWorkbook(t)
	cfg := DefaultConfig()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f.SetCellValue(cfg.PrimarySheet, "D2", "G9")
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	report := Verify(path, cfg, quietLogger())
	if c, _ := report.Find(CheckJoin); c.Passed {
		t.Error("Expected join check to fail when first row has no match")
	}
	if report.JoinedRows != 5 {
		t.Errorf("Expected 5 joined rows, got %d", report.JoinedRows)
	}
}

func TestVerifyMissingFile(t *testing.T) {
	report := Verify(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultConfig(), quietLogger())
	c, ok := report.Find(CheckOpen)
	if !ok || c.Passed {
		t.Fatalf("Expected failed open check, got %+v", report.Checks)
	}
	if report.Passed() {
		t.Error("Expected report to fail")
	}
}
