package middleware

import (
	"encoding/json"
	"net/http"

	"browserconfig/models"
)

// RequireRoles 허용된 역할만 통과시키는 래퍼. 역할은 검증된 토큰에서
// 온 값을 사용한다 (세션은 무상태, 서버측 폐기 목록 없음).
func RequireRoles(allowedRoles ...models.Role) func(http.HandlerFunc) http.HandlerFunc {
	set := make(map[models.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		set[r] = struct{}{}
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value("role").(string)
			if role == "" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse("Unauthorized", nil))
				return
			}
			if _, ok := set[models.Role(role)]; !ok {
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse("Forbidden: insufficient role", nil))
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}

// EnsureRole 메서드 분기 핸들러 내부에서 쓰는 역할 확인 헬퍼.
// 권한이 없으면 응답을 쓰고 false를 반환한다.
func EnsureRole(w http.ResponseWriter, r *http.Request, required models.Role) bool {
	role, _ := r.Context().Value("role").(string)
	if role == "" {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse("Unauthorized", nil))
		return false
	}
	if models.Role(role) != required {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse("Forbidden: insufficient role", nil))
		return false
	}
	return true
}
