package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"browserconfig/models"
)

func requestWithRole(role string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/installs", nil)
	if role == "" {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), "role", role))
}

func TestRequireRoles(t *testing.T) {
	called := false
	handler := RequireRoles(models.RoleSuperAdmin)(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, requestWithRole("super_admin"))
	if !called || rec.Code != http.StatusOK {
		t.Errorf("super_admin must pass, got status %d called=%v", rec.Code, called)
	}

	called = false
	rec = httptest.NewRecorder()
	handler(rec, requestWithRole("admin"))
	if called || rec.Code != http.StatusForbidden {
		t.Errorf("admin must be forbidden, got status %d called=%v", rec.Code, called)
	}

	called = false
	rec = httptest.NewRecorder()
	handler(rec, requestWithRole(""))
	if called || rec.Code != http.StatusUnauthorized {
		t.Errorf("missing role must yield 401, got status %d called=%v", rec.Code, called)
	}
}

func TestEnsureRole(t *testing.T) {
	rec := httptest.NewRecorder()
	if !EnsureRole(rec, requestWithRole("super_admin"), models.RoleSuperAdmin) {
		t.Error("matching role must pass")
	}

	rec = httptest.NewRecorder()
	if EnsureRole(rec, requestWithRole("admin"), models.RoleSuperAdmin) {
		t.Error("lower role must not pass")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	if EnsureRole(rec, requestWithRole(""), models.RoleSuperAdmin) {
		t.Error("anonymous request must not pass")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:51234"
	if got := GetClientIP(r); got != "203.0.113.7" {
		t.Errorf("remote addr: expected 203.0.113.7, got %q", got)
	}

	r.Header.Set("X-Real-IP", "198.51.100.9")
	if got := GetClientIP(r); got != "198.51.100.9" {
		t.Errorf("X-Real-IP must win over remote addr, got %q", got)
	}

	r.Header.Set("X-Forwarded-For", "192.0.2.1, 10.0.0.1")
	if got := GetClientIP(r); got != "192.0.2.1" {
		t.Errorf("first X-Forwarded-For entry must win, got %q", got)
	}
}
