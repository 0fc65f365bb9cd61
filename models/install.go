package models

import (
	"fmt"
	"strings"
)

const (
	deviceIDMinLen  = 10
	deviceIDMaxLen  = 200
	userAgentMaxLen = 500
)

// Install 설치 이벤트 레코드. (device_id, referrer) 쌍당 한 건만 저장된다.
type Install struct {
	ID          string `json:"id" db:"id"`
	DeviceID    string `json:"device_id" db:"device_id"`
	Referrer    string `json:"referrer" db:"referrer"`
	UserAgent   string `json:"user_agent,omitempty" db:"user_agent"`
	IPAddress   string `json:"ip_address,omitempty" db:"ip_address"`
	InstalledAt string `json:"installed_at" db:"installed_at"`
}

// InstallRequest 설치 등록 요청
type InstallRequest struct {
	DeviceID string `json:"device_id"`
	Referrer string `json:"referrer"`
}

// Normalize 입력 문자열 정리
func (r *InstallRequest) Normalize() {
	r.DeviceID = strings.TrimSpace(r.DeviceID)
	r.Referrer = strings.TrimSpace(r.Referrer)
}

// Validate 필드 검증
func (r InstallRequest) Validate() []string {
	var details []string

	switch {
	case r.DeviceID == "":
		details = append(details, "Device ID is required")
	case len(r.DeviceID) < deviceIDMinLen:
		details = append(details, fmt.Sprintf("Device ID must be at least %d characters", deviceIDMinLen))
	case len(r.DeviceID) > deviceIDMaxLen:
		details = append(details, fmt.Sprintf("Device ID cannot exceed %d characters", deviceIDMaxLen))
	}

	switch {
	case r.Referrer == "":
		details = append(details, "Referrer is required")
	case len(r.Referrer) < referrerMinLen:
		details = append(details, fmt.Sprintf("Referrer must be at least %d characters", referrerMinLen))
	case len(r.Referrer) > referrerMaxLen:
		details = append(details, fmt.Sprintf("Referrer cannot exceed %d characters", referrerMaxLen))
	}

	return details
}

// InstallDeleteRequest 설치 레코드 일괄 삭제 요청 (super_admin 전용)
type InstallDeleteRequest struct {
	DeviceID      string `json:"device_id"`
	Referrer      string `json:"referrer"`
	OlderThanDays int    `json:"older_than_days"`
}

// TruncateUserAgent user_agent 길이 제한 적용
func TruncateUserAgent(ua string) string {
	if len(ua) > userAgentMaxLen {
		return ua[:userAgentMaxLen]
	}
	return ua
}
