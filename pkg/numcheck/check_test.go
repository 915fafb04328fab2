package numcheck

import (
	"testing"

	"overcheck/pkg/check"
)

func TestNumberCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		kind       Kind
		wantStatus check.Status
		wantErr    bool
	}{
		{
			name:       "small integer",
			raw:        "42",
			kind:       Integer,
			wantStatus: check.StatusOK,
		},
		{
			name:       "negative integer",
			raw:        "-9001",
			kind:       Integer,
			wantStatus: check.StatusOK,
		},
		{
			name:       "max int64 fits",
			raw:        "9223372036854775807",
			kind:       Integer,
			wantStatus: check.StatusOK,
		},
		{
			name:       "min int64 fits",
			raw:        "-9223372036854775808",
			kind:       Integer,
			wantStatus: check.StatusOK,
		},
		{
			name:       "integer one past max overflows",
			raw:        "9223372036854775808",
			kind:       Integer,
			wantStatus: check.StatusOverflow,
		},
		{
			name:       "integer one past min overflows",
			raw:        "-9223372036854775809",
			kind:       Integer,
			wantStatus: check.StatusOverflow,
		},
		{
			name:       "integer garbage is a fault",
			raw:        "twelve",
			kind:       Integer,
			wantStatus: check.StatusOverflow,
			wantErr:    true,
		},
		{
			name:       "small float",
			raw:        "3.14",
			kind:       Float,
			wantStatus: check.StatusOK,
		},
		{
			name:       "large float within range",
			raw:        "1.5e308",
			kind:       Float,
			wantStatus: check.StatusOK,
		},
		{
			name:       "float past max magnitude overflows",
			raw:        "1e309",
			kind:       Float,
			wantStatus: check.StatusOverflow,
		},
		{
			name:       "negative float past max magnitude overflows",
			raw:        "-1e400",
			kind:       Float,
			wantStatus: check.StatusOverflow,
		},
		{
			name:       "float garbage is a fault",
			raw:        "pi",
			kind:       Float,
			wantStatus: check.StatusOverflow,
			wantErr:    true,
		},
		{
			name:       "unknown kind is a fault",
			raw:        "1",
			kind:       Kind("decimal"),
			wantStatus: check.StatusOverflow,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Check{Raw: tt.raw, Kind: tt.kind}

			result := c.Run()

			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (details: %v)", result.Status, tt.wantStatus, result.Details)
			}
			if tt.wantErr && result.Err == nil {
				t.Error("Err = nil, want fault error")
			}
			if !tt.wantErr && tt.wantStatus == check.StatusOverflow && result.Err != nil {
				t.Errorf("Err = %v, want nil for a range overflow", result.Err)
			}
		})
	}
}
