package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	if err := InitJWT("test-secret"); err != nil {
		t.Fatalf("InitJWT failed: %v", err)
	}
}

func TestInitJWTRejectsEmptySecret(t *testing.T) {
	if err := InitJWT(""); err == nil {
		t.Fatal("empty secret must be rejected")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	initTestJWT(t)

	token, expiresAt, err := GenerateToken("adm-1", "admin", "super_admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("token must not be empty")
	}
	if expiresAt <= time.Now().Unix() {
		t.Errorf("expiry must be in the future, got %d", expiresAt)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.AdminID != "adm-1" || claims.Username != "admin" || claims.Role != "super_admin" {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	initTestJWT(t)

	claims := &Claims{
		AdminID:  "adm-1",
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	if _, err := ValidateToken(signed); err == nil {
		t.Fatal("expired token must fail validation")
	}
}

func TestValidateTokenRejectsWrongSignature(t *testing.T) {
	initTestJWT(t)

	claims := &Claims{
		AdminID: "adm-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	if _, err := ValidateToken(signed); err == nil {
		t.Fatal("token signed with a different key must fail validation")
	}
}

func TestExtractTokenPrefersHeaderOverCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "cookie-token"})

	if got := ExtractToken(r); got != "header-token" {
		t.Errorf("expected header token to win, got %q", got)
	}
}

func TestExtractTokenFallsBackToCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "cookie-token"})

	if got := ExtractToken(r); got != "cookie-token" {
		t.Errorf("expected cookie token, got %q", got)
	}
}

func TestExtractTokenMissing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	if got := ExtractToken(r); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}

	// Authorization 헤더가 Bearer 형식이 아니면 무시한다
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if got := ExtractToken(r); got != "" {
		t.Errorf("non-bearer header must be ignored, got %q", got)
	}
}
