package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"browserconfig/logger"
	"browserconfig/models"
	"browserconfig/services"
)

// PublicConfigHandler는 클라이언트 앱용 공개 설정 조회를 처리한다.
// 인증 없이 접근되므로 공개 필드만 응답한다.
type PublicConfigHandler struct {
	service services.ConfigService
}

// NewPublicConfigHandler는 공개 설정 핸들러를 생성한다.
func NewPublicConfigHandler(service services.ConfigService) *PublicConfigHandler {
	return &PublicConfigHandler{service: service}
}

// Get 레퍼러로 공개 설정 조회
// @Summary 공개 설정 조회
// @Description 레퍼러에 해당하는 브라우저 설정의 공개 필드를 조회합니다 (인증 불필요)
// @Tags 클라이언트
// @Accept json
// @Produce json
// @Param ref query string true "레퍼러"
// @Success 200 {object} models.APIResponse{data=models.PublicConfig} "조회 성공"
// @Failure 400 {object} models.APIResponse "레퍼러 누락"
// @Failure 404 {object} models.APIResponse "설정 없음"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/config [get]
func (h *PublicConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	referrer := strings.TrimSpace(r.URL.Query().Get("ref"))
	if referrer == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Referrer parameter is required", nil))
		return
	}

	config, err := h.service.GetByReferrer(r.Context(), referrer)
	if err != nil {
		if errors.Is(err, services.ErrConfigNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.ErrorResponse("Config not found for this referrer", nil))
			return
		}
		logger.WithFields(map[string]interface{}{
			"error":    err.Error(),
			"referrer": referrer,
		}).Error("Failed to query public config")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Internal server error", nil))
		return
	}

	json.NewEncoder(w).Encode(models.SuccessResponse("Config retrieved", config.Public()))
}
