package models

import (
	"strings"
	"testing"
)

func TestInstallRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     InstallRequest
		message string // empty means no errors expected
	}{
		{"valid", InstallRequest{DeviceID: "device-abc-123", Referrer: "partner"}, ""},
		{"missing device id", InstallRequest{Referrer: "partner"}, "Device ID is required"},
		{"device id too short", InstallRequest{DeviceID: "short", Referrer: "partner"}, "at least 10 characters"},
		{"device id too long", InstallRequest{DeviceID: strings.Repeat("d", 201), Referrer: "partner"}, "cannot exceed 200 characters"},
		{"missing referrer", InstallRequest{DeviceID: "device-abc-123"}, "Referrer is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := tt.req.Validate()
			if tt.message == "" {
				if len(details) != 0 {
					t.Fatalf("expected no errors, got %v", details)
				}
				return
			}
			found := false
			for _, d := range details {
				if strings.Contains(d, tt.message) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("expected message containing %q, got %v", tt.message, details)
			}
		})
	}
}

func TestTruncateUserAgent(t *testing.T) {
	short := "Mozilla/5.0"
	if got := TruncateUserAgent(short); got != short {
		t.Errorf("short user agent should pass through, got %q", got)
	}

	long := strings.Repeat("x", 600)
	got := TruncateUserAgent(long)
	if len(got) != 500 {
		t.Errorf("expected truncation to 500 chars, got %d", len(got))
	}
}
