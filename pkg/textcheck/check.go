package textcheck

import (
	"unicode/utf8"

	"overcheck/pkg/check"
	"overcheck/pkg/limits"
)

// Char verifies that the input holds a single character.
type Char struct {
	Value string // the candidate character
}

// Run executes the character check. Length is measured in code points, so
// multi-byte UTF-8 input like "é" still counts as one character.
func (c *Char) Run() check.Result {
	result := check.Result{
		Name: "char",
	}

	n := utf8.RuneCountInString(c.Value)
	if n > 1 {
		return result.Overflowf("character overflow: %q holds %d characters", c.Value, n)
	}

	result.Status = check.StatusOK
	result.AddDetailf("value: %q", c.Value)
	return result
}

// String verifies that a string does not exceed a maximum length.
type String struct {
	Value  string
	MaxLen int // 0 means the default (255)
}

// Run executes the string length check.
func (c *String) Run() check.Result {
	result := check.Result{
		Name: "string",
	}

	maxLen := c.MaxLen
	if maxLen == 0 {
		maxLen = limits.DefaultMaxStringLen
	}

	n := utf8.RuneCountInString(c.Value)
	if n > maxLen {
		return result.Overflowf("buffer overflow: %d characters > maximum %d", n, maxLen)
	}

	result.Status = check.StatusOK
	result.AddDetailf("length: %d", n)
	result.AddDetailf("max allowed: %d", maxLen)
	return result
}
