// Package limits holds the threshold set shared by every check.
// A Limits value is constructed once per front end and never mutated.
package limits

import "math"

// Defaults for thresholds not supplied by the front end.
const (
	DefaultMaxStringLen = 255  // maximum string length in code points
	DefaultMemoryPct    = 90.0 // memory used-percent threshold
	DefaultDiskPct      = 90.0 // disk used-percent threshold
)

// Representable numeric bounds reported by the number checks.
const (
	MaxInt   = math.MaxInt64
	MinInt   = math.MinInt64
	MaxFloat = math.MaxFloat64
)

// Limits is the fixed threshold set for a checker front end.
type Limits struct {
	MaxStringLen int     // maximum string length in code points
	MemoryPct    float64 // memory used-percent threshold
	DiskPct      float64 // disk used-percent threshold
}

// Default returns the threshold set used when nothing is configured.
func Default() Limits {
	return Limits{
		MaxStringLen: DefaultMaxStringLen,
		MemoryPct:    DefaultMemoryPct,
		DiskPct:      DefaultDiskPct,
	}
}
