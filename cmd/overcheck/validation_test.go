package main

import (
	"strings"
	"testing"
)

func TestRequireExactlyOne(t *testing.T) {
	tests := []struct {
		name      string
		flags     []flagSet
		wantErr   bool
		errPrefix string
	}{
		{
			name: "no flags set",
			flags: []flagSet{
				{"--foo", false},
				{"--bar", false},
			},
			wantErr:   true,
			errPrefix: "one of",
		},
		{
			name: "one flag set",
			flags: []flagSet{
				{"--foo", true},
				{"--bar", false},
			},
			wantErr: false,
		},
		{
			name: "multiple flags set",
			flags: []flagSet{
				{"--foo", true},
				{"--bar", true},
			},
			wantErr:   true,
			errPrefix: "only one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireExactlyOne(tt.flags...)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
					return
				}
				if !strings.HasPrefix(err.Error(), tt.errPrefix) {
					t.Errorf("error = %q, want prefix %q", err.Error(), tt.errPrefix)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRequireAtLeastOne(t *testing.T) {
	tests := []struct {
		name    string
		flags   []flagSet
		wantErr bool
	}{
		{
			name: "none set",
			flags: []flagSet{
				{"--foo", false},
				{"--bar", false},
			},
			wantErr: true,
		},
		{
			name: "one set",
			flags: []flagSet{
				{"--foo", false},
				{"--bar", true},
			},
			wantErr: false,
		},
		{
			name: "all set",
			flags: []flagSet{
				{"--foo", true},
				{"--bar", true},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireAtLeastOne(tt.flags...)

			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
