// Package numcheck validates numbers against the representable range of
// their numeric kind. The check parses the raw digit string itself rather
// than accepting an already-parsed value: a value wider than int64 or
// float64 cannot exist as a Go number, so range violations are only
// observable as parse-time range errors.
package numcheck

import (
	"errors"
	"strconv"

	"overcheck/pkg/check"
	"overcheck/pkg/limits"
)

// Kind selects the numeric kind to validate against.
type Kind string

const (
	Integer Kind = "integer"
	Float   Kind = "float"
)

// Check verifies that a raw numeric string fits its kind's range.
type Check struct {
	Raw  string // the number as typed, before parsing
	Kind Kind
}

// Run executes the range check. A range error is the overflow condition;
// a syntax error is a fault.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "number: " + string(c.Kind),
	}

	switch c.Kind {
	case Integer:
		v, err := strconv.ParseInt(c.Raw, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				result.AddDetailf("limits: min %d, max %d", int64(limits.MinInt), int64(limits.MaxInt))
				return result.Overflowf("integer overflow: %s is outside the representable range", c.Raw)
			}
			return result.Failf("not a valid integer: %q", c.Raw)
		}
		result.AddDetailf("value: %d", v)

	case Float:
		v, err := strconv.ParseFloat(c.Raw, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				result.AddDetailf("limits: max magnitude %g", limits.MaxFloat)
				return result.Overflowf("float overflow: %s is outside the representable range", c.Raw)
			}
			return result.Failf("not a valid number: %q", c.Raw)
		}
		result.AddDetailf("value: %g", v)

	default:
		return result.Failf("unknown numeric kind: %q", c.Kind)
	}

	result.Status = check.StatusOK
	return result
}
