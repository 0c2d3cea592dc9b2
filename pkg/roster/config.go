// Package roster inspects, modifies and verifies an employee roster workbook.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the workbook used when no path is configured.
const DefaultPath = "demo_horizontal_merge.xlsx"

// Config names the workbook, sheets, columns and reference data the tools
// operate on.
type Config struct {
	// Path is the workbook file, read and rewritten in place.
	Path string `yaml:"path"`
	// PrimarySheet is the roster sheet that receives the grade column.
	PrimarySheet string `yaml:"primary_sheet"`
	// IDColumn is the 1-based identifier column; an empty cell ends the data.
	IDColumn int `yaml:"id_column"`
	// GradeColumn is the 1-based column the grade codes are written to.
	GradeColumn int `yaml:"grade_column"`
	// GradeHeader is the header label written to row 1 of GradeColumn.
	GradeHeader string `yaml:"grade_header"`
	// GradeCycle is assigned to data rows by position, wrapping around.
	GradeCycle []string `yaml:"grade_cycle"`
	// ReferenceSheet is recreated from ReferenceHeaders and ReferenceRows.
	ReferenceSheet   string          `yaml:"reference_sheet"`
	ReferenceHeaders []string        `yaml:"reference_headers"`
	ReferenceRows    [][]interface{} `yaml:"reference_rows"`
	// JoinKey is the reference column matched against GradeHeader.
	JoinKey string `yaml:"join_key"`
	// CheckField must be non-nil in the first joined row for the join check to pass.
	CheckField string `yaml:"check_field"`
	// PreviewRows bounds the records printed per table.
	PreviewRows int `yaml:"preview_rows"`
	// DisplayColumns are shown from joined rows, when present.
	DisplayColumns []string `yaml:"display_columns"`
}

// DefaultConfig returns the configuration for the demo roster workbook.
func DefaultConfig() Config {
	return Config{
		Path:             DefaultPath,
		PrimarySheet:     "Merge Demo",
		IDColumn:         1,
		GradeColumn:      4,
		GradeHeader:      "Grade",
		GradeCycle:       []string{"G1", "G2", "G3", "G1", "G2"},
		ReferenceSheet:   "Salary Grades",
		ReferenceHeaders: []string{"Grade Code", "Base Salary", "Bonus Amount"},
		ReferenceRows: [][]interface{}{
			{"G1", 5000, 1000},
			{"G2", 8000, 2000},
			{"G3", 12000, 5000},
			{"G4", 20000, 10000},
		},
		JoinKey:        "Grade Code",
		CheckField:     "Base Salary",
		PreviewRows:    5,
		DisplayColumns: []string{"Full Name", "Grade", "Base Salary", "Bonus Amount"},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values; an empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the tools cannot act on.
func (c Config) Validate() error {
	switch {
	case c.Path == "":
		return fmt.Errorf("%w: path is empty", ErrInvalidConfig)
	case c.PrimarySheet == "" || c.ReferenceSheet == "":
		return fmt.Errorf("%w: sheet names must be set", ErrInvalidConfig)
	case c.PrimarySheet == c.ReferenceSheet:
		return fmt.Errorf("%w: primary and reference sheet are both %q", ErrInvalidConfig, c.PrimarySheet)
	case c.IDColumn < 1 || c.GradeColumn < 1:
		return fmt.Errorf("%w: columns are 1-based", ErrInvalidConfig)
	case c.IDColumn == c.GradeColumn:
		return fmt.Errorf("%w: grade column would overwrite the id column", ErrInvalidConfig)
	case c.GradeHeader == "":
		return fmt.Errorf("%w: grade header is empty", ErrInvalidConfig)
	case len(c.GradeCycle) == 0:
		return fmt.Errorf("%w: grade cycle is empty", ErrInvalidConfig)
	case len(c.ReferenceHeaders) == 0:
		return fmt.Errorf("%w: reference headers are empty", ErrInvalidConfig)
	}
	for i, row := range c.ReferenceRows {
		if len(row) != len(c.ReferenceHeaders) {
			return fmt.Errorf("%w: reference row %d has %d values, want %d",
				ErrInvalidConfig, i+1, len(row), len(c.ReferenceHeaders))
		}
	}
	return nil
}

// GradeFor returns the grade code for a 1-based sheet row (row >= 2).
func (c Config) GradeFor(row int) string {
	return c.GradeCycle[(row-2)%len(c.GradeCycle)]
}
