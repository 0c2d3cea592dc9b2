package models

// Check is the verdict of one independent verification step.
type Check struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Report collects everything the verifier found.
type Report struct {
	// Checks are in the order they were attempted.
	Checks []Check `json:"checks"`
	// GradePreview is the primary sheet restricted to name and grade columns.
	GradePreview *Table `json:"grade_preview,omitempty"`
	// Reference is the full reference table.
	Reference *Table `json:"reference,omitempty"`
	// Joined is the head of the left join, restricted to display columns.
	Joined *Table `json:"joined,omitempty"`
	// JoinedRows is the total number of joined rows.
	JoinedRows int `json:"joined_rows"`
	// Unmatched is the number of joined rows without a reference match.
	Unmatched int `json:"unmatched"`
}

// Add appends a check verdict.
func (r *Report) Add(name string, passed bool, msg string) {
	r.Checks = append(r.Checks, Check{Name: name, Passed: passed, Message: msg})
}

// Passed reports whether every attempted check passed.
func (r *Report) Passed() bool {
	if len(r.Checks) == 0 {
		return false
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Find returns the named check, if it was attempted.
func (r *Report) Find(name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}
