package handlers

import (
	"encoding/json"
	"net/http"

	"browserconfig/database"
	"browserconfig/logger"
	"browserconfig/models"
)

// ListActivities 관리자 활동 로그 조회
// @Summary 활동 로그 조회
// @Description 최근 관리자 활동 로그를 조회합니다
// @Tags 관리자
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "조회 개수 (기본 50, 최대 200)"
// @Success 200 {object} models.APIResponse{data=[]models.AdminActivityLog} "조회 성공"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/activities [get]
func ListActivities(w http.ResponseWriter, r *http.Request) {
	limit := parsePositiveInt(r.URL.Query().Get("limit"), 50)
	if limit > 200 {
		limit = 200
	}

	rows, err := database.DB.Query(
		`SELECT id, admin_id, username, action, details, created_at
		FROM admin_activity_logs ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		logger.Error("Failed to query activity logs: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to query activity logs", nil))
		return
	}
	defer rows.Close()

	logs := []models.AdminActivityLog{}
	for rows.Next() {
		var entry models.AdminActivityLog
		if err := rows.Scan(&entry.ID, &entry.AdminID, &entry.Username, &entry.Action, &entry.Details, &entry.CreatedAt); err != nil {
			continue
		}
		logs = append(logs, entry)
	}

	json.NewEncoder(w).Encode(models.SuccessResponse("Activity logs retrieved", logs))
}
