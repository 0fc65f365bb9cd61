package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"browserconfig/logger"
)

// MaxUploadSize 업로드 허용 최대 크기 (5MiB)
const MaxUploadSize = 5 << 20

// UploadURLPrefix 업로드 자산 참조 경로 접두사
const UploadURLPrefix = "/uploads/"

// UploadDir 업로드 파일 저장 디렉터리 (기동 시 환경변수로 덮어쓸 수 있음)
var UploadDir = filepath.Join("public", "uploads")

// 허용 이미지 MIME 타입
var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/svg+xml",
	"image/webp",
}

var filenameStemPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// UploadRejectedError 업로드 검증 실패. 어떤 제약을 어겼는지 메시지에 담는다.
type UploadRejectedError struct {
	Reason string
}

func (e *UploadRejectedError) Error() string {
	return e.Reason
}

// ValidateUpload 타입/크기 검증. 두 검사는 독립이며 파일 쓰기 전에 수행한다.
func ValidateUpload(contentType string, size int64) error {
	mediaType := strings.TrimSpace(contentType)
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = strings.TrimSpace(mediaType[:idx])
	}

	allowed := false
	for _, t := range allowedImageTypes {
		if strings.EqualFold(mediaType, t) {
			allowed = true
			break
		}
	}
	if !allowed {
		return &UploadRejectedError{
			Reason: fmt.Sprintf("File type not allowed. Allowed types: %s", strings.Join(allowedImageTypes, ", ")),
		}
	}

	if size > MaxUploadSize {
		return &UploadRejectedError{
			Reason: fmt.Sprintf("File size too large. Maximum size: %dMB", MaxUploadSize/1024/1024),
		}
	}

	return nil
}

// GenerateUniqueFilename 충돌 없는 저장 파일명 생성.
// 원본 이름에서 경로 성분을 제거하고, 영숫자 외 문자는 '-'로 접어
// 20자 이하 stem + 타임스탬프 + 랜덤 접미사 + 소문자 확장자로 만든다.
func GenerateUniqueFilename(originalName string) string {
	base := filepath.Base(filepath.FromSlash(originalName))
	base = path.Base(strings.ReplaceAll(base, "\\", "/"))

	ext := strings.ToLower(filepath.Ext(base))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	stem = filenameStemPattern.ReplaceAllString(stem, "-")
	stem = strings.Trim(stem, "-")
	if len(stem) > 20 {
		stem = stem[:20]
	}
	if stem == "" {
		stem = "upload"
	}

	return fmt.Sprintf("%s-%d-%s%s", stem, time.Now().UnixMilli(), RandomSuffix(6), ext)
}

// EnsureUploadDir 저장 디렉터리 생성 (멱등)
func EnsureUploadDir() error {
	return os.MkdirAll(UploadDir, 0755)
}

// SaveUploadedFile 검증된 업로드 파일을 저장하고 참조 경로를 반환한다.
// 검증 실패는 *UploadRejectedError, 저장 실패는 일반 에러.
func SaveUploadedFile(file multipart.File, header *multipart.FileHeader) (url string, filename string, err error) {
	if err := ValidateUpload(header.Header.Get("Content-Type"), header.Size); err != nil {
		return "", "", err
	}

	if err := EnsureUploadDir(); err != nil {
		return "", "", err
	}

	originalName := strings.TrimSpace(header.Filename)
	if originalName == "" {
		originalName = "upload"
	}

	filename = GenerateUniqueFilename(originalName)
	dstPath := filepath.Join(UploadDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", "", err
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		// 일부만 쓰인 파일 정리 (best-effort)
		if rmErr := os.Remove(dstPath); rmErr != nil {
			logger.Warn("Failed to clean up partial upload %s: %v", dstPath, rmErr)
		}
		return "", "", err
	}

	if err := dst.Close(); err != nil {
		return "", "", err
	}

	return UploadURLPrefix + filename, filename, nil
}

// DeleteUploadedFile 발급된 참조 경로의 파일 삭제. 관리 디렉터리 밖이거나
// 이미 없는 파일이면 false를 반환할 뿐 에러가 아니다 (멱등).
func DeleteUploadedFile(url string) bool {
	if !strings.HasPrefix(url, UploadURLPrefix) {
		return false
	}

	filename := path.Base(url)
	if filename == "." || filename == "/" || filename == ".." {
		return false
	}

	if err := os.Remove(filepath.Join(UploadDir, filename)); err != nil {
		return false
	}
	return true
}
