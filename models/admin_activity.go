package models

// AdminActivityLog 관리자 활동 로그
type AdminActivityLog struct {
	ID        int64  `json:"id" db:"id"`
	AdminID   string `json:"admin_id" db:"admin_id"`
	Username  string `json:"username" db:"username"`
	Action    string `json:"action" db:"action"`
	Details   string `json:"details" db:"details"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

// 관리자 활동 액션 상수
const (
	AdminActionLogin          = "login"
	AdminActionCreateConfig   = "create_config"
	AdminActionUpdateConfig   = "update_config"
	AdminActionDeleteConfig   = "delete_config"
	AdminActionCreateAdmin    = "create_admin"
	AdminActionDeleteInstalls = "delete_installs"
	AdminActionUploadFile     = "upload_file"
)
