package sizecheck

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// CountJSON returns the element count of a JSON array payload.
func CountJSON(payload string) (int, error) {
	if !gjson.Valid(payload) {
		return 0, fmt.Errorf("invalid JSON")
	}

	parsed := gjson.Parse(payload)
	if !parsed.IsArray() {
		return 0, fmt.Errorf("not a JSON array")
	}

	return int(parsed.Get("#").Int()), nil
}

// WidthsJSON returns the per-row widths of a JSON array-of-arrays payload.
func WidthsJSON(payload string) ([]int, error) {
	if !gjson.Valid(payload) {
		return nil, fmt.Errorf("invalid JSON")
	}

	parsed := gjson.Parse(payload)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("not a JSON array")
	}

	widths := []int{}
	var rowErr error
	parsed.ForEach(func(_, row gjson.Result) bool {
		if !row.IsArray() {
			rowErr = fmt.Errorf("row %d is not a JSON array", len(widths))
			return false
		}
		widths = append(widths, int(row.Get("#").Int()))
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return widths, nil
}
