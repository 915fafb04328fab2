package check

// Checker is implemented by all check types.
// Each check compares an observed value or metric against a configured
// threshold and returns a Result describing the outcome.
//
// Implementations:
//   - textcheck.Char, textcheck.String: character and string length
//   - numcheck.Check: integer/float range
//   - sizecheck.Check, sizecheck.Matrix: collection sizes and dimensions
//   - memcheck.Check: virtual memory usage
//   - diskcheck.Check, diskcheck.Sweep: disk and removable drive usage
//   - alloccheck.Check: allocation simulation
type Checker interface {
	Run() Result
}
