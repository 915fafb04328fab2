package diskcheck

import (
	"runtime"
	"strings"

	"overcheck/pkg/check"
	"overcheck/pkg/limits"
	"overcheck/pkg/units"
)

// DriveInfo holds usage figures for one removable volume.
type DriveInfo struct {
	Device     string
	Mountpoint string
	Fstype     string
	DiskInfo
}

// windowsRemovableLetters are the drive letters the sweep treats as
// removable on windows. The letter heuristic is imprecise; volumes with a
// "removable" mount option are matched on every platform first.
var windowsRemovableLetters = []string{"E:", "F:", "G:", "H:"}

// DefaultRemovable reports whether a partition looks like a removable
// volume: a "removable" mount option, or on windows a drive letter in
// E: through H:.
func DefaultRemovable(p Partition) bool {
	for _, opt := range p.Opts {
		if strings.Contains(strings.ToLower(opt), "removable") {
			return true
		}
	}
	if runtime.GOOS == "windows" {
		for _, letter := range windowsRemovableLetters {
			if strings.HasPrefix(p.Device, letter) {
				return true
			}
		}
	}
	return false
}

// Sweep checks usage of every removable volume against a percent
// threshold. Volumes whose usage query fails are skipped; all
// over-threshold volumes are aggregated into one result.
type Sweep struct {
	Threshold float64              // used-percent threshold; 0 means the default (90)
	Removable func(Partition) bool // nil means DefaultRemovable
	Disk      DiskQuerier          // injected for testing
}

// Run executes the removable drive sweep.
func (s *Sweep) Run() check.Result {
	result := check.Result{
		Name: "drives",
	}

	threshold := s.Threshold
	if threshold == 0 {
		threshold = limits.DefaultDiskPct
	}

	removable := s.Removable
	if removable == nil {
		removable = DefaultRemovable
	}

	querier := s.Disk
	if querier == nil {
		querier = &RealDiskQuerier{}
	}

	parts, err := querier.Partitions()
	if err != nil {
		return result.Failf("failed to enumerate volumes: %v", err)
	}

	var drives []DriveInfo
	var over []DriveInfo
	for _, p := range parts {
		if !removable(p) {
			continue
		}

		info, err := querier.Usage(p.Mountpoint)
		if err != nil {
			// Inaccessible volumes are skipped, not reported.
			continue
		}

		drive := DriveInfo{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			DiskInfo:   info,
		}
		drives = append(drives, drive)
		if info.UsedPercent > threshold {
			over = append(over, drive)
		}
	}

	if len(drives) == 0 {
		result.Status = check.StatusOK
		result.AddDetail("no removable drives found")
		return result
	}

	for _, d := range drives {
		result.AddDetailf("%s at %s (%s): %.1f%% used, %.2f/%.2f GB",
			d.Device, d.Mountpoint, d.Fstype, d.UsedPercent,
			units.Gigabytes(d.Used), units.Gigabytes(d.Total))
	}

	if len(over) > 0 {
		for _, d := range over {
			result.AddDetailf("high removable drive usage: %.1f%% > threshold %.1f%% for %s", d.UsedPercent, threshold, d.Device)
		}
		result.Status = check.StatusOverflow
		return result
	}

	result.Status = check.StatusOK
	return result
}
