package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"browserconfig/database"
	"browserconfig/logger"
	"browserconfig/models"
	"browserconfig/utils"
)

// 계정명은 소문자/숫자/언더스코어/하이픈만 허용
var adminUsernamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ListAdmins 관리자 계정 목록 조회
// @Summary 관리자 목록 조회
// @Description 관리자 계정 목록을 조회합니다 (비밀번호 해시 제외)
// @Tags 관리자
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=[]models.Admin} "조회 성공"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/users [get]
func ListAdmins(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(
		"SELECT id, username, role, created_at, updated_at FROM admins ORDER BY created_at ASC",
	)
	if err != nil {
		logger.Error("Failed to query admins: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to query admins", nil))
		return
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(&admin.ID, &admin.Username, &admin.Role, &admin.CreatedAt, &admin.UpdatedAt); err != nil {
			continue
		}
		admins = append(admins, admin)
	}

	json.NewEncoder(w).Encode(models.SuccessResponse("Admins retrieved", admins))
}

// CreateAdmin 관리자 계정 생성 (super_admin 전용)
// @Summary 관리자 생성
// @Description 새로운 관리자 계정을 생성합니다. role을 생략하면 admin으로 생성됩니다.
// @Tags 관리자
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AdminCreateRequest true "계정 정보"
// @Success 201 {object} models.APIResponse{data=models.Admin} "생성 성공"
// @Failure 400 {object} models.APIResponse "검증 실패"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 403 {object} models.APIResponse "권한 없음"
// @Failure 409 {object} models.APIResponse "중복 계정명"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/users [post]
func CreateAdmin(w http.ResponseWriter, r *http.Request) {
	requestID := r.Context().Value("request_id")

	var req models.AdminCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Invalid request body", nil))
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	details := []string{}
	if len(username) < 3 || len(username) > 50 {
		details = append(details, "username: must be between 3 and 50 characters")
	} else if !adminUsernamePattern.MatchString(username) {
		details = append(details, "username: may only contain lowercase letters, digits, '_' and '-'")
	}
	if len(req.Password) < 6 {
		details = append(details, "password: must be at least 6 characters")
	}

	role := models.Role(strings.TrimSpace(req.Role))
	if role == "" {
		role = models.RoleAdmin
	}
	if !role.Valid() {
		details = append(details, "role: must be one of 'admin', 'super_admin'")
	}

	if len(details) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ValidationErrorResponse(details))
		return
	}

	var exists int
	if err := database.DB.QueryRow("SELECT COUNT(1) FROM admins WHERE username = ?", username).Scan(&exists); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Internal server error", nil))
		return
	}
	if exists > 0 {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(models.ErrorResponse("Username already exists", nil))
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Internal server error", nil))
		return
	}

	id, err := utils.GenerateID("adm")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to generate id", nil))
		return
	}

	now := utils.NowDB()
	_, err = database.DB.Exec(
		"INSERT INTO admins (id, username, password, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, username, hashed, string(role), now, now,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(models.ErrorResponse("Username already exists", nil))
			return
		}
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create admin")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to create admin", nil))
		return
	}

	admin := models.Admin{
		ID:        id,
		Username:  username,
		Role:      string(role),
		CreatedAt: now,
		UpdatedAt: now,
	}

	logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"admin_id":   id,
		"username":   username,
		"role":       string(role),
	}).Info("Admin account created")

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.SuccessResponse("Admin created successfully", admin))

	logActivity(r, models.AdminActionCreateAdmin, "Admin created: "+username)
}
