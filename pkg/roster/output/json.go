// Package output renders roster results for the terminal or as JSON.
package output

import "encoding/json"

// ToJSON serialises v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
