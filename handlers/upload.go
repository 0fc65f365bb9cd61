package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"browserconfig/logger"
	"browserconfig/models"
	"browserconfig/utils"
)

// UploadFile 이미지 파일 업로드
// @Summary 파일 업로드
// @Description 이미지 파일을 업로드하고 접근 URL을 반환합니다 (최대 5MiB, 이미지 형식만 허용)
// @Tags 업로드
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "업로드할 이미지"
// @Success 200 {object} models.APIResponse "업로드 성공"
// @Failure 400 {object} models.APIResponse "허용되지 않는 파일"
// @Failure 401 {object} models.APIResponse "인증 필요"
// @Failure 500 {object} models.APIResponse "저장 실패"
// @Router /api/upload [post]
func UploadFile(w http.ResponseWriter, r *http.Request) {
	requestID := r.Context().Value("request_id")

	// 본문 크기 제한: 파일 한도 + 멀티파트 오버헤드 여유분
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxUploadSize+(1<<20))

	if err := r.ParseMultipartForm(utils.MaxUploadSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("File too large or invalid multipart request", nil))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse("File field 'file' is required", nil))
		return
	}
	defer file.Close()

	url, filename, err := utils.SaveUploadedFile(file, header)
	if err != nil {
		var rejected *utils.UploadRejectedError
		if errors.As(err, &rejected) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse(rejected.Reason, nil))
			return
		}
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save uploaded file")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse("Failed to save uploaded file", nil))
		return
	}

	logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"filename":   filename,
		"size":       header.Size,
	}).Info("File uploaded")

	json.NewEncoder(w).Encode(models.SuccessResponse("File uploaded successfully", map[string]string{
		"url":      url,
		"filename": filename,
	}))

	logActivity(r, models.AdminActionUploadFile, "File uploaded: "+filename)
}
