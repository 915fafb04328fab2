// Package alloccheck simulates a buffer overflow by performing a real
// allocation and observing whether the runtime can satisfy it.
package alloccheck

import (
	"runtime"
	"time"

	"overcheck/pkg/check"
)

// Check attempts to allocate a slice of zeroed 8-byte slots.
type Check struct {
	Elements int64 // number of slots to allocate
}

// Run executes the allocation simulation. A refused allocation (the
// runtime's makeslice limit) is recovered and reported as the overflow
// outcome; success reports the element count and elapsed time.
func (c *Check) Run() (result check.Result) {
	result.Name = "simulate"

	if c.Elements < 0 {
		return result.Failf("invalid allocation size: %d", c.Elements)
	}

	n := int(c.Elements)
	if int64(n) != c.Elements {
		return result.Overflowf("memory overflow: cannot allocate %d elements", c.Elements)
	}

	defer func() {
		if r := recover(); r != nil {
			result = check.Result{Name: "simulate"}
			result.Overflowf("memory overflow: cannot allocate %d elements (%v)", c.Elements, r)
		}
	}()

	start := time.Now()
	buf := make([]uint64, n)
	elapsed := time.Since(start)
	runtime.KeepAlive(buf)

	result.Status = check.StatusOK
	result.AddDetailf("allocated %d elements in %s", n, elapsed)
	return result
}
