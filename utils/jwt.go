package utils

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCookieName 브라우저 세션용 쿠키 이름
const TokenCookieName = "auth-token"

// TokenLifetime 토큰 유효 기간 (7일)
const TokenLifetime = 7 * 24 * time.Hour

var jwtSecret []byte

// InitJWT 서명 키 설정. 키가 비어 있으면 서버를 띄우지 않는다
// (기본값 폴백 없음 - main에서 기동 실패 처리).
func InitJWT(secret string) error {
	if secret == "" {
		return errors.New("JWT secret must not be empty")
	}
	jwtSecret = []byte(secret)
	return nil
}

// Claims JWT 클레임
type Claims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken JWT 토큰 생성
func GenerateToken(adminID, username, role string) (string, int64, error) {
	if len(jwtSecret) == 0 {
		return "", 0, errors.New("JWT secret is not configured")
	}

	expirationTime := time.Now().Add(TokenLifetime)

	claims := &Claims{
		AdminID:  adminID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken JWT 토큰 검증. 만료/변조/형식 오류 모두 에러 반환으로 수렴한다.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ExtractToken 요청에서 토큰 추출. Authorization 헤더가 쿠키보다 우선한다.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}
