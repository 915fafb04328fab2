package diskcheck

import (
	"errors"
	"strings"
	"testing"

	"overcheck/pkg/check"
	"overcheck/pkg/units"
)

type mockDiskQuerier struct {
	usage      map[string]DiskInfo
	usageErr   map[string]error
	partitions []Partition
	partsErr   error
}

func (m *mockDiskQuerier) Usage(path string) (DiskInfo, error) {
	if err, ok := m.usageErr[path]; ok {
		return DiskInfo{}, err
	}
	info, ok := m.usage[path]
	if !ok {
		return DiskInfo{}, errors.New("no such path")
	}
	return info, nil
}

func (m *mockDiskQuerier) Partitions() ([]Partition, error) {
	return m.partitions, m.partsErr
}

func TestDiskCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
	}{
		{
			name: "usage under default threshold",
			check: Check{
				Path: "/",
				Disk: &mockDiskQuerier{usage: map[string]DiskInfo{
					"/": {Path: "/", Total: 100 * units.GB, Used: 40 * units.GB, Free: 60 * units.GB, UsedPercent: 40.0},
				}},
			},
			wantStatus: check.StatusOK,
		},
		{
			name: "usage over default threshold",
			check: Check{
				Path: "/",
				Disk: &mockDiskQuerier{usage: map[string]DiskInfo{
					"/": {Path: "/", UsedPercent: 95.2},
				}},
			},
			wantStatus: check.StatusOverflow,
		},
		{
			name: "empty path defaults to root",
			check: Check{
				Disk: &mockDiskQuerier{usage: map[string]DiskInfo{
					"/": {Path: "/", UsedPercent: 10.0},
				}},
			},
			wantStatus: check.StatusOK,
		},
		{
			name: "custom threshold",
			check: Check{
				Path:      "/var",
				Threshold: 50.0,
				Disk: &mockDiskQuerier{usage: map[string]DiskInfo{
					"/var": {Path: "/var", UsedPercent: 60.0},
				}},
			},
			wantStatus: check.StatusOverflow,
		},
		{
			name: "query failure is a fault",
			check: Check{
				Path: "/mnt/gone",
				Disk: &mockDiskQuerier{usageErr: map[string]error{
					"/mnt/gone": errors.New("permission denied"),
				}},
			},
			wantStatus: check.StatusOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (details: %v)", result.Status, tt.wantStatus, result.Details)
			}
		})
	}
}

func TestDiskCheck_Name(t *testing.T) {
	c := Check{
		Path: "/var",
		Disk: &mockDiskQuerier{usage: map[string]DiskInfo{
			"/var": {Path: "/var", UsedPercent: 10.0},
		}},
	}

	result := c.Run()

	if result.Name != "disk: /var" {
		t.Errorf("Name = %q, want %q", result.Name, "disk: /var")
	}
}

func TestDiskCheck_Figures(t *testing.T) {
	c := Check{
		Path: "/",
		Disk: &mockDiskQuerier{usage: map[string]DiskInfo{
			"/": {Path: "/", Total: 100 * units.GB, Used: 40 * units.GB, Free: 60 * units.GB, UsedPercent: 40.0},
		}},
	}

	result := c.Run()

	joined := strings.Join(result.Details, "\n")
	for _, want := range []string{
		"usage: 40.0%",
		"total: 100.0GB",
		"used: 40.0GB",
		"free: 60.0GB",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Details missing %q (details: %v)", want, result.Details)
		}
	}
}
