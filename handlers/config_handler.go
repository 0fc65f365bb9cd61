package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"browserconfig/logger"
	"browserconfig/models"
	"browserconfig/services"
	"browserconfig/utils"
)

// ConfigHandler는 설정 레코드 관련 HTTP 요청을 처리한다.
type ConfigHandler struct {
	service services.ConfigService
}

// NewConfigHandler는 설정 핸들러를 생성한다.
func NewConfigHandler(service services.ConfigService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

// List 설정 목록 조회
// @Summary 설정 목록 조회
// @Description 설정 레코드 목록을 페이징하여 조회합니다
// @Tags 설정
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "페이지 (기본 1)"
// @Param limit query int false "페이지 크기 (기본 10)"
// @Param search query string false "referrer/homepage 검색어"
// @Success 200 {object} models.PaginatedResponse "조회 성공"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/config [get]
func (h *ConfigHandler) List(w http.ResponseWriter, r *http.Request) {
	queryVals := r.URL.Query()

	filter := services.ConfigFilter{
		Search:   strings.TrimSpace(queryVals.Get("search")),
		Page:     parsePositiveInt(queryVals.Get("page"), 1),
		PageSize: parsePositiveInt(queryVals.Get("limit"), 10),
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	configs, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		logger.Error("Failed to query configs: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to query configs", nil))
		return
	}

	resp := models.PaginatedResponse{
		Status:  "success",
		Message: "Configs retrieved",
		Data:    configs,
		Meta: models.Pagination{
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalCount: total,
			TotalPages: models.CalcTotalPages(total, filter.PageSize),
		},
	}
	json.NewEncoder(w).Encode(resp)
}

// Create 설정 생성
// @Summary 설정 생성
// @Description 새로운 레퍼러 설정을 생성합니다
// @Tags 설정
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ConfigRequest true "설정 정보"
// @Success 201 {object} models.APIResponse{data=models.Config} "생성 성공"
// @Failure 400 {object} models.APIResponse "검증 실패"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 409 {object} models.APIResponse "중복 레퍼러"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/config [post]
func (h *ConfigHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ConfigRequest
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

	config, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrReferrerConflict) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(models.ErrorResponse("Referrer already exists", nil))
			return
		}
		logger.WithFields(map[string]interface{}{
			"error":    err.Error(),
			"referrer": req.Referrer,
		}).Error("Failed to create config")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to create config", nil))
		return
	}

	logger.WithFields(map[string]interface{}{
		"config_id": config.ID,
		"referrer":  config.Referrer,
	}).Info("Config created")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.SuccessResponse("Config created successfully", config))

	logActivity(r, models.AdminActionCreateConfig, "Config created: "+config.Referrer)
}

// Get 설정 상세 조회
// @Summary 설정 상세 조회
// @Description ID로 설정 레코드를 조회합니다
// @Tags 설정
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "설정 ID"
// @Success 200 {object} models.APIResponse{data=models.Config} "조회 성공"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 404 {object} models.APIResponse "설정 없음"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/config/{id} [get]
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := configIDFromContext(r)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Config ID is required", nil))
		return
	}

	config, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrConfigNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.ErrorResponse("Config not found", nil))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to retrieve config", nil))
		return
	}

	json.NewEncoder(w).Encode(models.SuccessResponse("Config retrieved", config))
}

// Update 설정 수정
// @Summary 설정 수정
// @Description ID로 설정 레코드를 수정합니다
// @Tags 설정
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "설정 ID"
// @Param request body models.ConfigRequest true "설정 정보"
// @Success 200 {object} models.APIResponse{data=models.Config} "수정 성공"
// @Failure 400 {object} models.APIResponse "검증 실패"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 404 {object} models.APIResponse "설정 없음"
// @Failure 409 {object} models.APIResponse "중복 레퍼러"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/config/{id} [put]
func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := configIDFromContext(r)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Config ID is required", nil))
		return
	}

	var req models.ConfigRequest
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

	config, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfigNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.ErrorResponse("Config not found", nil))
		case errors.Is(err, services.ErrReferrerConflict):
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(models.ErrorResponse("Referrer already exists", nil))
		default:
			logger.WithFields(map[string]interface{}{
				"error":     err.Error(),
				"config_id": id,
			}).Error("Failed to update config")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse("Failed to update config", nil))
		}
		return
	}

	json.NewEncoder(w).Encode(models.SuccessResponse("Config updated successfully", config))

	logActivity(r, models.AdminActionUpdateConfig, "Config updated: "+config.Referrer)
}

// Delete 설정 삭제
// @Summary 설정 삭제
// @Description 설정 레코드와 참조 이미지 파일을 삭제합니다. 파일 삭제 실패는 레코드 삭제를 막지 않습니다.
// @Tags 설정
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "설정 ID"
// @Success 200 {object} models.APIResponse "삭제 성공"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 404 {object} models.APIResponse "설정 없음"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /api/admin/config/{id} [delete]
func (h *ConfigHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := configIDFromContext(r)
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("Config ID is required", nil))
		return
	}

	config, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrConfigNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.ErrorResponse("Config not found", nil))
			return
		}
		logger.WithFields(map[string]interface{}{
			"error":     err.Error(),
			"config_id": id,
		}).Error("Failed to delete config")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to delete config", nil))
		return
	}

	// 참조 파일 정리 (best-effort: 이미 없거나 실패해도 레코드 삭제는 완료됨)
	if config.IconURL != "" && !utils.DeleteUploadedFile(config.IconURL) {
		logger.Warn("Failed to delete icon file for config %s: %s", config.ID, config.IconURL)
	}
	for _, ad := range config.Ads {
		if !utils.DeleteUploadedFile(ad) {
			logger.Warn("Failed to delete ad file for config %s: %s", config.ID, ad)
		}
	}

	json.NewEncoder(w).Encode(models.SuccessResponse("Config deleted successfully", nil))

	logActivity(r, models.AdminActionDeleteConfig, "Config deleted: "+config.Referrer)
}

// configIDFromContext 경로에서 추출되어 컨텍스트에 저장된 설정 ID
func configIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value("path_config_id").(string)
	return id
}

// logActivity 컨텍스트의 관리자 정보로 활동 로그 기록
func logActivity(r *http.Request, action, details string) {
	adminID, _ := r.Context().Value("admin_id").(string)
	if adminID == "" {
		return
	}
	username, _ := r.Context().Value("username").(string)
	utils.LogAdminActivity(adminID, username, action, details)
}
