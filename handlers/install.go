package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"browserconfig/database"
	"browserconfig/logger"
	"browserconfig/middleware"
	"browserconfig/models"
	"browserconfig/utils"
)

// RegisterInstall 설치 이벤트 등록 (인증 불필요, 멱등)
// @Summary 설치 등록
// @Description 클라이언트 앱의 설치 이벤트를 등록합니다. 같은 (device_id, referrer) 쌍의 재등록은 중복 생성 없이 성공으로 응답합니다.
// @Tags 클라이언트
// @Accept json
// @Produce json
// @Param request body models.InstallRequest true "설치 정보"
// @Success 200 {object} models.APIResponse "등록 성공 (신규 또는 기존)"
// @Failure 400 {object} models.APIResponse "검증 실패"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/register-install [post]
func RegisterInstall(w http.ResponseWriter, r *http.Request) {
	requestID := r.Context().Value("request_id")

	var req models.InstallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Invalid request body", nil))
		return
	}

	req.Normalize()
	if details := req.Validate(); len(details) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ValidationErrorResponse(details))
		return
	}

	// 기존 레코드 확인 (멱등 응답)
	var existing models.Install
	err := database.DB.QueryRow(
		`SELECT id, device_id, referrer, installed_at FROM installs WHERE device_id = ? AND referrer = ?`,
		req.DeviceID, req.Referrer,
	).Scan(&existing.ID, &existing.DeviceID, &existing.Referrer, &existing.InstalledAt)
	if err == nil {
		json.NewEncoder(w).Encode(models.SuccessResponse("Install already registered", existing))
		return
	}

	id, err := utils.GenerateID("ins")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to generate id", nil))
		return
	}

	install := models.Install{
		ID:          id,
		DeviceID:    req.DeviceID,
		Referrer:    req.Referrer,
		UserAgent:   models.TruncateUserAgent(r.UserAgent()),
		IPAddress:   middleware.GetClientIP(r),
		InstalledAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	_, err = database.DB.Exec(
		`INSERT INTO installs (id, device_id, referrer, user_agent, ip_address, installed_at) VALUES (?, ?, ?, ?, ?, ?)`,
		install.ID, install.DeviceID, install.Referrer, install.UserAgent, install.IPAddress, install.InstalledAt,
	)
	if err != nil {
		// 동시 등록 경합: 유니크 위반도 성공으로 응답 (중복 레코드 없음)
		if database.IsUniqueViolation(err) {
			json.NewEncoder(w).Encode(models.SuccessResponse("Install already registered", nil))
			return
		}
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to register install")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Internal server error", nil))
		return
	}

	logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"device_id":  install.DeviceID,
		"referrer":   install.Referrer,
	}).Info("Install registered")

	json.NewEncoder(w).Encode(models.SuccessResponse("Install registered successfully", install))
}

// ListInstalls 설치 레코드 목록 조회
// @Summary 설치 목록 조회
// @Description 설치 레코드를 페이징/필터링하여 조회합니다
// @Tags 설치
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "페이지 (기본 1)"
// @Param limit query int false "페이지 크기 (기본 20)"
// @Param referrer query string false "레퍼러 부분 일치"
// @Param start_date query string false "installed_at 하한 (YYYY-MM-DD)"
// @Param end_date query string false "installed_at 상한 (YYYY-MM-DD)"
// @Success 200 {object} models.PaginatedResponse "조회 성공"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/installs [get]
func ListInstalls(w http.ResponseWriter, r *http.Request) {
	queryVals := r.URL.Query()

	page := parsePositiveInt(queryVals.Get("page"), 1)
	pageSize := parsePositiveInt(queryVals.Get("limit"), 20)
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	where := []string{}
	args := []interface{}{}

	if referrer := strings.TrimSpace(queryVals.Get("referrer")); referrer != "" {
		where = append(where, "referrer LIKE ?")
		args = append(args, "%"+referrer+"%")
	}
	if start := strings.TrimSpace(queryVals.Get("start_date")); start != "" {
		if ts, err := utils.ParseUserDate(start); err == nil {
			where = append(where, "installed_at >= ?")
			args = append(args, utils.FormatDateTimeForDB(ts))
		}
	}
	if end := strings.TrimSpace(queryVals.Get("end_date")); end != "" {
		if ts, err := utils.ParseUserDate(end); err == nil {
			where = append(where, "installed_at <= ?")
			args = append(args, utils.FormatDateTimeForDB(ts))
		}
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := database.DB.QueryRow("SELECT COUNT(*) FROM installs"+whereClause, args...).Scan(&total); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to count installs", nil))
		return
	}

	dataQuery := `SELECT id, device_id, referrer, user_agent, ip_address, installed_at
		FROM installs` + whereClause + `
		ORDER BY installed_at DESC
		LIMIT ? OFFSET ?`

	dataArgs := append(args, pageSize, offset)
	rows, err := database.DB.Query(dataQuery, dataArgs...)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to query installs", nil))
		return
	}
	defer rows.Close()

	result := []models.Install{}
	for rows.Next() {
		var install models.Install
		if err := rows.Scan(
			&install.ID,
			&install.DeviceID,
			&install.Referrer,
			&install.UserAgent,
			&install.IPAddress,
			&install.InstalledAt,
		); err != nil {
			continue
		}
		result = append(result, install)
	}

	resp := models.PaginatedResponse{
		Status:  "success",
		Message: "Installs retrieved",
		Data:    result,
		Meta: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: total,
			TotalPages: models.CalcTotalPages(total, pageSize),
		},
	}
	json.NewEncoder(w).Encode(resp)
}

// DeleteInstalls 설치 레코드 일괄 삭제 (super_admin 전용)
// @Summary 설치 일괄 삭제
// @Description 필터 조건에 맞는 설치 레코드를 삭제합니다. 최소 한 개의 필터가 필요합니다.
// @Tags 설치
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.InstallDeleteRequest true "삭제 필터"
// @Success 200 {object} models.APIResponse "삭제 성공"
// @Failure 400 {object} models.APIResponse "필터 누락"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 403 {object} models.APIResponse "권한 없음"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/installs [delete]
func DeleteInstalls(w http.ResponseWriter, r *http.Request) {
	requestID := r.Context().Value("request_id")

	var req models.InstallDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Invalid request body", nil))
		return
	}

	where := []string{}
	args := []interface{}{}

	if deviceID := strings.TrimSpace(req.DeviceID); deviceID != "" {
		where = append(where, "device_id = ?")
		args = append(args, deviceID)
	}
	if referrer := strings.TrimSpace(req.Referrer); referrer != "" {
		where = append(where, "referrer = ?")
		args = append(args, referrer)
	}
	if req.OlderThanDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -req.OlderThanDays)
		where = append(where, "installed_at < ?")
		args = append(args, utils.FormatDateTimeForDB(cutoff))
	}

	if len(where) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("At least one filter parameter is required", nil))
		return
	}

	result, err := database.DB.Exec("DELETE FROM installs WHERE "+strings.Join(where, " AND "), args...)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete installs")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to delete installs", nil))
		return
	}

	deleted, _ := result.RowsAffected()

	logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"deleted":    deleted,
	}).Info("Install records deleted")

	logActivity(r, models.AdminActionDeleteInstalls, fmt.Sprintf("Deleted %d install records", deleted))

	json.NewEncoder(w).Encode(models.SuccessResponse(
		fmt.Sprintf("Deleted %d install records", deleted),
		map[string]int64{"deleted_count": deleted},
	))
}

// parsePositiveInt 양의 정수 파싱, 실패 시 기본값
func parsePositiveInt(val string, fallback int) int {
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
