package memcheck

import (
	"overcheck/pkg/check"
	"overcheck/pkg/limits"
	"overcheck/pkg/units"
)

// Check verifies host memory usage stays under a percent threshold.
type Check struct {
	Threshold float64       // used-percent threshold; 0 means the default (90)
	Mem       MemoryQuerier // injected for testing
}

// Run executes the memory usage check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "memory",
	}

	threshold := c.Threshold
	if threshold == 0 {
		threshold = limits.DefaultMemoryPct
	}

	querier := c.Mem
	if querier == nil {
		querier = &RealMemoryQuerier{}
	}

	info, err := querier.VirtualMemory()
	if err != nil {
		return result.Failf("failed to query memory: %v", err)
	}

	result.AddDetailf("usage: %.1f%%", info.UsedPercent)
	result.AddDetailf("total: %s (%d bytes, %.2f GB)", units.FormatSize(info.Total), info.Total, units.Gigabytes(info.Total))
	result.AddDetailf("used: %s (%d bytes, %.2f GB)", units.FormatSize(info.Used), info.Used, units.Gigabytes(info.Used))
	result.AddDetailf("available: %s (%d bytes, %.2f GB)", units.FormatSize(info.Available), info.Available, units.Gigabytes(info.Available))

	if info.UsedPercent > threshold {
		return result.Overflowf("high memory usage: %.1f%% > threshold %.1f%%", info.UsedPercent, threshold)
	}

	result.Status = check.StatusOK
	return result
}
