package memcheck

import "github.com/shirou/gopsutil/v4/mem"

// MemoryInfo holds the virtual memory figures a check reports.
type MemoryInfo struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// MemoryQuerier abstracts the host memory query for testability.
type MemoryQuerier interface {
	VirtualMemory() (MemoryInfo, error)
}

// RealMemoryQuerier implements MemoryQuerier against the host.
type RealMemoryQuerier struct{}

func (r *RealMemoryQuerier) VirtualMemory() (MemoryInfo, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return MemoryInfo{}, err
	}
	return MemoryInfo{
		Total:       v.Total,
		Available:   v.Available,
		Used:        v.Used,
		UsedPercent: v.UsedPercent,
	}, nil
}
