package models

import (
	"strings"
	"testing"
)

func validConfigRequest() ConfigRequest {
	return ConfigRequest{
		Referrer: "partner_site-01",
		IconURL:  "/uploads/icon-123.png",
		Homepage: "https://example.com/start",
		Ads:      []string{"/uploads/banner-1.jpg"},
	}
}

func TestConfigRequestValidateOK(t *testing.T) {
	req := validConfigRequest()
	if details := req.Validate(); len(details) != 0 {
		t.Fatalf("expected no validation errors, got %v", details)
	}
}

func TestConfigRequestValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRequest)
		message string
	}{
		{"missing referrer", func(r *ConfigRequest) { r.Referrer = "" }, "Referrer is required"},
		{"referrer too short", func(r *ConfigRequest) { r.Referrer = "a" }, "at least 2 characters"},
		{"referrer too long", func(r *ConfigRequest) { r.Referrer = strings.Repeat("a", 101) }, "cannot exceed 100 characters"},
		{"referrer bad chars", func(r *ConfigRequest) { r.Referrer = "bad site!" }, "letters, numbers, underscores, and hyphens"},
		{"missing icon", func(r *ConfigRequest) { r.IconURL = "" }, "Icon URL is required"},
		{"icon outside uploads", func(r *ConfigRequest) { r.IconURL = "https://cdn.example.com/icon.png" }, "Icon URL must be a valid image"},
		{"icon bad extension", func(r *ConfigRequest) { r.IconURL = "/uploads/script.exe" }, "Icon URL must be a valid image"},
		{"missing homepage", func(r *ConfigRequest) { r.Homepage = "" }, "Homepage URL is required"},
		{"homepage not a url", func(r *ConfigRequest) { r.Homepage = "not-a-url" }, "Homepage must be a valid URL"},
		{"ad outside uploads", func(r *ConfigRequest) { r.Ads = []string{"/elsewhere/ad.png"} }, "Ad URL must be a valid image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validConfigRequest()
			tt.mutate(&req)
			details := req.Validate()
			if len(details) == 0 {
				t.Fatal("expected validation errors, got none")
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

func TestConfigRequestNormalize(t *testing.T) {
	req := ConfigRequest{
		Referrer: "  partner  ",
		IconURL:  " /uploads/icon.png ",
		Homepage: " https://example.com ",
		Ads:      []string{" /uploads/ad.png "},
	}
	req.Normalize()

	if req.Referrer != "partner" {
		t.Errorf("referrer not trimmed: %q", req.Referrer)
	}
	if req.IconURL != "/uploads/icon.png" {
		t.Errorf("icon url not trimmed: %q", req.IconURL)
	}
	if req.Homepage != "https://example.com" {
		t.Errorf("homepage not trimmed: %q", req.Homepage)
	}
	if req.Ads[0] != "/uploads/ad.png" {
		t.Errorf("ad not trimmed: %q", req.Ads[0])
	}
}

func TestConfigPublicProjection(t *testing.T) {
	config := Config{
		ID:        "cfg_internal",
		Referrer:  "partner",
		IconURL:   "/uploads/icon.png",
		Homepage:  "https://example.com",
		Ads:       nil,
		UpdatedAt: "2026-08-01 10:00:00",
	}

	pub := config.Public()
	if pub.Referrer != "partner" || pub.IconURL != "/uploads/icon.png" {
		t.Errorf("public projection mismatch: %+v", pub)
	}
	if pub.Ads == nil {
		t.Error("nil ads should project to empty slice")
	}
}

func TestValidReferrer(t *testing.T) {
	valid := []string{"ab", "partner_site-01", strings.Repeat("a", 100)}
	for _, ref := range valid {
		if !ValidReferrer(ref) {
			t.Errorf("expected %q to be valid", ref)
		}
	}

	invalid := []string{"", "a", strings.Repeat("a", 101), "bad site", "한글"}
	for _, ref := range invalid {
		if ValidReferrer(ref) {
			t.Errorf("expected %q to be invalid", ref)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleSuperAdmin.Valid() {
		t.Error("known roles must be valid")
	}
	for _, role := range []Role{"", "root", "Administrator", "ADMIN"} {
		if role.Valid() {
			t.Errorf("expected role %q to be invalid", role)
		}
	}
}
