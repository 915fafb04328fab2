package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK       Status = "OK"
	StatusOverflow Status = "OVERFLOW"
)

// Result holds the outcome of a single check.
//
// OVERFLOW covers both tiers of failure: the threshold violation a check
// exists to detect, and an unexpected fault while performing the check.
// Faults additionally carry Err; front ends never need a separate error path.
type Result struct {
	Name    string   // e.g., "string", "disk: /var"
	Status  Status   // OK or OVERFLOW
	Details []string // human-readable details
	Err     error    // underlying error for faults
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Overflow returns true if the check detected an overflow condition.
func (r Result) Overflow() bool {
	return r.Status == StatusOverflow
}
