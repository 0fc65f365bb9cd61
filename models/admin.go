package models

// Role 관리자 역할 (닫힌 집합)
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid 알려진 역할인지 확인한다. 토큰에 담긴 역할이
// 이 집합에 없으면 인증 실패로 처리된다.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Admin 관리자 정보
type Admin struct {
	ID        string `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	Password  string `json:"-" db:"password"` // bcrypt 해시
	Role      string `json:"role" db:"role"`  // admin, super_admin
	CreatedAt string `json:"created_at" db:"created_at"`
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 로그인 응답
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Admin     *Admin `json:"admin"`
}

// AdminCreateRequest 관리자 계정 생성 요청
type AdminCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
