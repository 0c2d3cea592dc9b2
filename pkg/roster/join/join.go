// Package join combines record tables by key.
package join

import (
	"fmt"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// RightSuffix is appended to right-hand column names that collide with a
// left-hand column.
const RightSuffix = "_ref"

// Result is the outcome of a left join.
type Result struct {
	// Table holds one joined record per left record, in left order.
	Table *models.Table
	// Matched flags, per joined record, whether a right record was found.
	Matched []bool
}

// Unmatched counts joined records that found no right-hand match.
func (r *Result) Unmatched() int {
	n := 0
	for _, ok := range r.Matched {
		if !ok {
			n++
		}
	}
	return n
}

// Left joins every left record to the first right record whose rightKey
// value equals the record's leftKey value. Left records without a match
// keep nil for every right-hand column. The output always has exactly
// len(left.Records) records.
func Left(left, right *models.Table, leftKey, rightKey string) (*Result, error) {
	if !left.HasColumn(leftKey) {
		return nil, fmt.Errorf("join: left key %q not in %q", leftKey, left.Sheet)
	}
	if !right.HasColumn(rightKey) {
		return nil, fmt.Errorf("join: right key %q not in %q", rightKey, right.Sheet)
	}

	rightNames := make(map[string]string, len(right.Headers))
	headers := append([]string(nil), left.Headers...)
	for _, h := range right.Headers {
		name := h
		if left.HasColumn(h) {
			name = h + RightSuffix
		}
		rightNames[h] = name
		headers = append(headers, name)
	}

	index := make(map[string]models.Record, len(right.Records))
	for _, rec := range right.Records {
		key, ok := keyOf(rec[rightKey])
		if !ok {
			continue
		}
		if _, dup := index[key]; !dup {
			index[key] = rec
		}
	}

	result := &Result{
		Table: &models.Table{
			Sheet:   left.Sheet + "+" + right.Sheet,
			Headers: headers,
			Records: make([]models.Record, 0, len(left.Records)),
		},
		Matched: make([]bool, 0, len(left.Records)),
	}
	for _, rec := range left.Records {
		joined := make(models.Record, len(headers))
		for k, v := range rec {
			joined[k] = v
		}
		var match models.Record
		if key, ok := keyOf(rec[leftKey]); ok {
			match = index[key]
		}
		for h, name := range rightNames {
			if match != nil {
				joined[name] = match[h]
			} else {
				joined[name] = nil
			}
		}
		result.Table.Records = append(result.Table.Records, joined)
		result.Matched = append(result.Matched, match != nil)
	}

	return result, nil
}

// keyOf renders a cell value as a comparable key; nil never matches.
func keyOf(v interface{}) (string, bool) {
	if v == nil {
		return "", false
	}
	return fmt.Sprint(v), true
}
