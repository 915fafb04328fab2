package limits

import "testing"

func TestDefault(t *testing.T) {
	l := Default()

	if l.MaxStringLen != 255 {
		t.Errorf("MaxStringLen = %d, want 255", l.MaxStringLen)
	}
	if l.MemoryPct != 90.0 {
		t.Errorf("MemoryPct = %v, want 90.0", l.MemoryPct)
	}
	if l.DiskPct != 90.0 {
		t.Errorf("DiskPct = %v, want 90.0", l.DiskPct)
	}
}
