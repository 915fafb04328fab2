package sizecheck

import (
	"strings"
	"testing"

	"overcheck/pkg/check"
)

func TestSizeCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
	}{
		{
			name:       "under limit",
			check:      Check{Size: 5, Max: 10},
			wantStatus: check.StatusOK,
		},
		{
			name:       "exactly at limit",
			check:      Check{Size: 10, Max: 10},
			wantStatus: check.StatusOK,
		},
		{
			name:       "over limit",
			check:      Check{Size: 15, Max: 10},
			wantStatus: check.StatusOverflow,
		},
		{
			name:       "empty collection",
			check:      Check{Size: 0, Max: 10},
			wantStatus: check.StatusOK,
		},
		{
			name:       "negative size is a fault",
			check:      Check{Size: -1, Max: 10},
			wantStatus: check.StatusOverflow,
		},
		{
			name:       "list kind over limit",
			check:      Check{Size: 3, Max: 2, Kind: KindList},
			wantStatus: check.StatusOverflow,
		},
		{
			name:       "stack kind under limit",
			check:      Check{Size: 2, Max: 3, Kind: KindStack},
			wantStatus: check.StatusOK,
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

func TestSizeCheck_OverflowDetail(t *testing.T) {
	c := Check{Size: 15, Max: 10}

	result := c.Run()

	if !result.Overflow() {
		t.Fatal("Overflow() = false, want true")
	}
	if len(result.Details) != 1 || !strings.Contains(result.Details[0], "size 15 > maximum 10") {
		t.Errorf("Details = %v, want overflow message with size and maximum", result.Details)
	}
}

// List and stack checks equal the array check apart from the kind tag.
func TestSizeCheck_KindsAgree(t *testing.T) {
	for _, kind := range []Kind{KindList, KindStack} {
		array := Check{Size: 15, Max: 10, Kind: KindArray}
		tagged := Check{Size: 15, Max: 10, Kind: kind}

		arrayResult := array.Run()
		taggedResult := tagged.Run()

		if taggedResult.Status != arrayResult.Status {
			t.Errorf("%s Status = %v, want %v", kind, taggedResult.Status, arrayResult.Status)
		}
		if taggedResult.Name != string(kind) {
			t.Errorf("%s Name = %q, want %q", kind, taggedResult.Name, string(kind))
		}
	}
}

func TestSizeCheck_DefaultKind(t *testing.T) {
	c := Check{Size: 1, Max: 2}

	result := c.Run()

	if result.Name != "array" {
		t.Errorf("Name = %q, want %q", result.Name, "array")
	}
}
