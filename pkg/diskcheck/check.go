package diskcheck

import (
	"overcheck/pkg/check"
	"overcheck/pkg/limits"
	"overcheck/pkg/units"
)

// Check verifies disk usage at a path stays under a percent threshold.
type Check struct {
	Path      string      // filesystem path; "" means "/"
	Threshold float64     // used-percent threshold; 0 means the default (90)
	Disk      DiskQuerier // injected for testing
}

// Run executes the disk usage check.
func (c *Check) Run() check.Result {
	path := c.Path
	if path == "" {
		path = "/"
	}

	result := check.Result{
		Name: "disk: " + path,
	}

	threshold := c.Threshold
	if threshold == 0 {
		threshold = limits.DefaultDiskPct
	}

	querier := c.Disk
	if querier == nil {
		querier = &RealDiskQuerier{}
	}

	info, err := querier.Usage(path)
	if err != nil {
		return result.Failf("failed to query disk usage: %v", err)
	}

	result.AddDetailf("usage: %.1f%%", info.UsedPercent)
	result.AddDetailf("total: %s (%d bytes, %.2f GB)", units.FormatSize(info.Total), info.Total, units.Gigabytes(info.Total))
	result.AddDetailf("used: %s (%d bytes, %.2f GB)", units.FormatSize(info.Used), info.Used, units.Gigabytes(info.Used))
	result.AddDetailf("free: %s (%d bytes, %.2f GB)", units.FormatSize(info.Free), info.Free, units.Gigabytes(info.Free))

	if info.UsedPercent > threshold {
		return result.Overflowf("high disk usage: %.1f%% > threshold %.1f%% for %s", info.UsedPercent, threshold, path)
	}

	result.Status = check.StatusOK
	return result
}
