package check

import "fmt"

// Fail marks the result as an overflow with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusOverflow
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Failf marks the result as an overflow with a formatted detail message.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Overflowf marks the result as an overflow without an underlying error.
// Used for the expected threshold-violation outcome, where nothing went
// wrong with the check itself.
func (r *Result) Overflowf(format string, args ...interface{}) Result {
	r.Status = StatusOverflow
	r.Details = append(r.Details, fmt.Sprintf(format, args...))
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
