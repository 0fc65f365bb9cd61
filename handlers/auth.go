package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"browserconfig/database"
	"browserconfig/logger"
	"browserconfig/models"
	"browserconfig/utils"
)

// Login 관리자 로그인
// @Summary 관리자 로그인
// @Description 관리자 계정으로 로그인하여 JWT 토큰을 발급받습니다. 토큰은 응답 본문과 HTTP-only 쿠키로 함께 전달됩니다.
// @Tags 인증
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "로그인 정보"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "로그인 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 401 {object} models.APIResponse "인증 실패"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/auth/login [post]
func Login(w http.ResponseWriter, r *http.Request) {
	requestID := r.Context().Value("request_id")

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid login request body")

		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Invalid request body", nil))
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Username and password are required", nil))
		return
	}

	logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"username":   username,
	}).Info("Login attempt")

	var admin models.Admin
	query := "SELECT id, username, password, role, created_at, updated_at FROM admins WHERE username = ?"
	err := database.DB.QueryRow(query, username).Scan(
		&admin.ID, &admin.Username, &admin.Password,
		&admin.Role, &admin.CreatedAt, &admin.UpdatedAt,
	)

	// 존재하지 않는 계정과 비밀번호 불일치는 동일한 메시지로 응답한다
	if err != nil || !utils.CheckPassword(admin.Password, req.Password) {
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"username":   username,
		}).Warn("Login failed")

		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse("Invalid credentials", nil))
		return
	}

	token, expiresAt, err := utils.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"admin_id":   admin.ID,
			"error":      err.Error(),
		}).Error("Failed to generate JWT token")

		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to generate token", nil))
		return
	}

	// 브라우저 세션용 쿠키 설정
	http.SetCookie(w, &http.Cookie{
		Name:     utils.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.TokenLifetime.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})

	logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"admin_id":   admin.ID,
		"username":   admin.Username,
	}).Info("Login successful")

	response := models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     &admin,
	}

	json.NewEncoder(w).Encode(models.SuccessResponse("Login successful", response))

	utils.LogAdminActivity(admin.ID, admin.Username, models.AdminActionLogin, "Login successful")
}

// GetMe 현재 로그인된 관리자 정보
// @Summary 현재 사용자 정보 조회
// @Description 로그인된 관리자의 정보를 조회합니다
// @Tags 인증
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.Admin} "조회 성공"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 404 {object} models.APIResponse "사용자 없음"
// @Router /api/admin/me [get]
func GetMe(w http.ResponseWriter, r *http.Request) {
	adminID, _ := r.Context().Value("admin_id").(string)

	var admin models.Admin
	query := "SELECT id, username, role, created_at, updated_at FROM admins WHERE id = ?"
	err := database.DB.QueryRow(query, adminID).Scan(
		&admin.ID, &admin.Username, &admin.Role, &admin.CreatedAt, &admin.UpdatedAt,
	)

	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse("Admin not found", nil))
		return
	}

	json.NewEncoder(w).Encode(models.SuccessResponse("Admin retrieved", admin))
}
