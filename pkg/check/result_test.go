package check

import "testing"

func TestStatus(t *testing.T) {
	if StatusOK != "OK" {
		t.Errorf("StatusOK = %q, want %q", StatusOK, "OK")
	}
	if StatusOverflow != "OVERFLOW" {
		t.Errorf("StatusOverflow = %q, want %q", StatusOverflow, "OVERFLOW")
	}
}

func TestCheckResult(t *testing.T) {
	result := Result{
		Name:    "string",
		Status:  StatusOK,
		Details: []string{"length: 5", "max allowed: 255"},
	}

	if result.Name != "string" {
		t.Errorf("Name = %q, want %q", result.Name, "string")
	}
	if result.Status != StatusOK {
		t.Errorf("Status = %q, want %q", result.Status, StatusOK)
	}
	if len(result.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(result.Details))
	}
}

func TestResultOK(t *testing.T) {
	result := Result{Status: StatusOK}
	if !result.OK() {
		t.Error("OK() = false, want true for StatusOK")
	}
	if result.Overflow() {
		t.Error("Overflow() = true, want false for StatusOK")
	}

	result.Status = StatusOverflow
	if result.OK() {
		t.Error("OK() = true, want false for StatusOverflow")
	}
	if !result.Overflow() {
		t.Error("Overflow() = false, want true for StatusOverflow")
	}
}
