package models

// GradeAssignment records the grade code written to one row.
type GradeAssignment struct {
	Row   int    `json:"row"`
	Grade string `json:"grade"`
}

// ModifyResult summarises the edits applied by the modifier.
type ModifyResult struct {
	// Column is the letter of the grade column, e.g. "D".
	Column string `json:"column"`
	// Assignments lists the grade written for each data row.
	Assignments []GradeAssignment `json:"assignments"`
	// ReplacedReference is true when a stale reference sheet was deleted first.
	ReplacedReference bool `json:"replaced_reference"`
	// ReferenceRows is the number of data rows written to the reference sheet.
	ReferenceRows int `json:"reference_rows"`
}
