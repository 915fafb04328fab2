package diskcheck

import "github.com/shirou/gopsutil/v4/disk"

// DiskInfo holds the filesystem usage figures a check reports.
type DiskInfo struct {
	Path        string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// Partition describes one mounted volume.
type Partition struct {
	Device     string
	Mountpoint string
	Fstype     string
	Opts       []string
}

// DiskQuerier abstracts filesystem usage and partition enumeration for
// testability.
type DiskQuerier interface {
	Usage(path string) (DiskInfo, error)
	Partitions() ([]Partition, error)
}

// RealDiskQuerier implements DiskQuerier against the host.
type RealDiskQuerier struct{}

func (r *RealDiskQuerier) Usage(path string) (DiskInfo, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return DiskInfo{}, err
	}
	return DiskInfo{
		Path:        u.Path,
		Total:       u.Total,
		Used:        u.Used,
		Free:        u.Free,
		UsedPercent: u.UsedPercent,
	}, nil
}

func (r *RealDiskQuerier) Partitions() ([]Partition, error) {
	stats, err := disk.Partitions(true)
	if err != nil {
		return nil, err
	}
	parts := make([]Partition, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, Partition{
			Device:     s.Device,
			Mountpoint: s.Mountpoint,
			Fstype:     s.Fstype,
			Opts:       s.Opts,
		})
	}
	return parts, nil
}
