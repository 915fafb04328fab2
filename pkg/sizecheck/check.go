package sizecheck

import (
	"overcheck/pkg/check"
)

// Kind tags which collection shape a size check covers. List and stack
// checks are the array check with a different tag.
type Kind string

const (
	KindArray Kind = "array"
	KindList  Kind = "list"
	KindStack Kind = "stack"
)

// Check verifies that a collection does not exceed a maximum size.
type Check struct {
	Size int  // observed number of elements
	Max  int  // maximum allowed size
	Kind Kind // array, list, or stack
}

// Run executes the size check.
func (c *Check) Run() check.Result {
	kind := c.Kind
	if kind == "" {
		kind = KindArray
	}

	result := check.Result{
		Name: string(kind),
	}

	if c.Size < 0 {
		return result.Failf("invalid %s size: %d", kind, c.Size)
	}

	if c.Size > c.Max {
		return result.Overflowf("%s overflow: size %d > maximum %d", kind, c.Size, c.Max)
	}

	result.Status = check.StatusOK
	result.AddDetailf("size: %d", c.Size)
	result.AddDetailf("max allowed: %d", c.Max)
	return result
}
