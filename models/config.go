package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	referrerMinLen = 2
	referrerMaxLen = 100
)

var (
	referrerPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	uploadImageRegex = regexp.MustCompile(`(?i)^/uploads/.+\.(jpg|jpeg|png|gif|svg|webp)$`)
)

// Config 레퍼러별 브라우저 설정 레코드
type Config struct {
	ID        string   `json:"id" db:"id"`
	Referrer  string   `json:"referrer" db:"referrer"`
	IconURL   string   `json:"icon_url" db:"icon_url"`
	Homepage  string   `json:"homepage" db:"homepage"`
	Ads       []string `json:"ads" db:"-"` // DB에는 JSON 텍스트로 저장
	CreatedAt string   `json:"created_at" db:"created_at"`
	UpdatedAt string   `json:"updated_at" db:"updated_at"`
}

// PublicConfig 클라이언트 앱에 노출되는 공개 필드
type PublicConfig struct {
	Referrer  string   `json:"referrer"`
	IconURL   string   `json:"icon_url"`
	Homepage  string   `json:"homepage"`
	Ads       []string `json:"ads"`
	UpdatedAt string   `json:"updated_at"`
}

// Public 공개 필드만 추려서 반환한다
func (c Config) Public() PublicConfig {
	ads := c.Ads
	if ads == nil {
		ads = []string{}
	}
	return PublicConfig{
		Referrer:  c.Referrer,
		IconURL:   c.IconURL,
		Homepage:  c.Homepage,
		Ads:       ads,
		UpdatedAt: c.UpdatedAt,
	}
}

// ConfigRequest 설정 생성/수정 요청
type ConfigRequest struct {
	Referrer string   `json:"referrer"`
	IconURL  string   `json:"icon_url"`
	Homepage string   `json:"homepage"`
	Ads      []string `json:"ads"`
}

// Normalize 입력 문자열 정리
func (r *ConfigRequest) Normalize() {
	r.Referrer = strings.TrimSpace(r.Referrer)
	r.IconURL = strings.TrimSpace(r.IconURL)
	r.Homepage = strings.TrimSpace(r.Homepage)
	for i := range r.Ads {
		r.Ads[i] = strings.TrimSpace(r.Ads[i])
	}
}

// Validate 필드 검증. 실패한 필드마다 메시지를 모아 반환한다.
func (r ConfigRequest) Validate() []string {
	var details []string

	switch {
	case r.Referrer == "":
		details = append(details, "Referrer is required")
	case len(r.Referrer) < referrerMinLen:
		details = append(details, fmt.Sprintf("Referrer must be at least %d characters", referrerMinLen))
	case len(r.Referrer) > referrerMaxLen:
		details = append(details, fmt.Sprintf("Referrer cannot exceed %d characters", referrerMaxLen))
	case !referrerPattern.MatchString(r.Referrer):
		details = append(details, "Referrer can only contain letters, numbers, underscores, and hyphens")
	}

	if r.IconURL == "" {
		details = append(details, "Icon URL is required")
	} else if !uploadImageRegex.MatchString(r.IconURL) {
		details = append(details, "Icon URL must be a valid image file in /uploads/ directory")
	}

	if r.Homepage == "" {
		details = append(details, "Homepage URL is required")
	} else if u, err := url.Parse(r.Homepage); err != nil || u.Scheme == "" || u.Host == "" {
		details = append(details, "Homepage must be a valid URL")
	}

	for _, ad := range r.Ads {
		if !uploadImageRegex.MatchString(ad) {
			details = append(details, "Ad URL must be a valid image file in /uploads/ directory")
			break
		}
	}

	return details
}

// ValidReferrer 레퍼러 형식 검사 (공개 조회용)
func ValidReferrer(ref string) bool {
	return len(ref) >= referrerMinLen && len(ref) <= referrerMaxLen && referrerPattern.MatchString(ref)
}
