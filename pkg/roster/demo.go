package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DemoEmployees is the seed roster written by WriteDemo.
var DemoEmployees = [][]interface{}{
	{1, "Alice Johnson", 101},
	{2, "Bob Smith", 102},
	{3, "Carol White", 101},
	{4, "David Brown", 103},
	{5, "Eve Davis", 102},
}

// WriteDemo creates a workbook at path holding only the primary sheet with
// "Emp ID", "Full Name" and "Dept ID" columns and the DemoEmployees rows.
// An existing file is overwritten.
func WriteDemo(path string, cfg Config) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cfg.PrimarySheet); err != nil {
		return err
	}
	headers := []interface{}{"Emp ID", "Full Name", "Dept ID"}
	if err := f.SetSheetRow(cfg.PrimarySheet, "A1", &headers); err != nil {
		return err
	}
	for i, emp := range DemoEmployees {
		row := append([]interface{}(nil), emp...)
		if err := f.SetSheetRow(cfg.PrimarySheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
