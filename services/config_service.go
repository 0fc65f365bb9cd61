package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"browserconfig/database"
	"browserconfig/models"
	"browserconfig/utils"
)

var (
	// ErrReferrerConflict는 동일한 레퍼러의 설정이 이미 존재할 때 반환됩니다.
	ErrReferrerConflict = errors.New("referrer already exists")
	// ErrConfigNotFound는 설정이 존재하지 않을 때 반환됩니다.
	ErrConfigNotFound = errors.New("config not found")
)

// ConfigFilter는 설정 목록 조회 시 필요한 필터 정보를 담습니다.
type ConfigFilter struct {
	Search   string // referrer/homepage 부분 일치
	Page     int
	PageSize int
}

// ConfigService는 설정 레코드 도메인의 비즈니스 로직을 정의합니다.
type ConfigService interface {
	Create(ctx context.Context, req models.ConfigRequest) (models.Config, error)
	List(ctx context.Context, filter ConfigFilter) ([]models.Config, int, error)
	Get(ctx context.Context, id string) (models.Config, error)
	GetByReferrer(ctx context.Context, referrer string) (models.Config, error)
	Update(ctx context.Context, id string, req models.ConfigRequest) (models.Config, error)
	Delete(ctx context.Context, id string) (models.Config, error)
	ReferencedAssets(ctx context.Context) (map[string]struct{}, error)
}

type configService struct {
	db SQLExecutor
}

// NewConfigService는 ConfigService 구현체를 생성합니다.
func NewConfigService(db SQLExecutor) ConfigService {
	return &configService{db: db}
}

func (s *configService) Create(ctx context.Context, req models.ConfigRequest) (models.Config, error) {
	id, err := utils.GenerateID("cfg")
	if err != nil {
		return models.Config{}, err
	}

	// 유니크 제약 위반이 최종 방어선이지만, 명확한 409 응답을 위해 선확인
	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM configs WHERE referrer = ?", req.Referrer).Scan(&exists); err != nil {
		return models.Config{}, err
	}
	if exists > 0 {
		return models.Config{}, ErrReferrerConflict
	}

	adsJSON, err := marshalAds(req.Ads)
	if err != nil {
		return models.Config{}, err
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO configs (id, referrer, icon_url, homepage, ads, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, req.Referrer, req.IconURL, req.Homepage, adsJSON, now, now,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.Config{}, ErrReferrerConflict
		}
		return models.Config{}, err
	}

	return models.Config{
		ID:        id,
		Referrer:  req.Referrer,
		IconURL:   req.IconURL,
		Homepage:  req.Homepage,
		Ads:       normalizeAds(req.Ads),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *configService) List(ctx context.Context, filter ConfigFilter) ([]models.Config, int, error) {
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	where := ""
	args := []any{}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = " WHERE referrer LIKE ? OR homepage LIKE ?"
		args = append(args, like, like)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM configs"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, referrer, icon_url, homepage, ads, created_at, updated_at FROM configs` +
		where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	configs := make([]models.Config, 0)
	for rows.Next() {
		config, err := scanConfig(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		configs = append(configs, config)
	}

	return configs, total, rows.Err()
}

func (s *configService) Get(ctx context.Context, id string) (models.Config, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, referrer, icon_url, homepage, ads, created_at, updated_at
		FROM configs WHERE id = ?`, id)
	return scanConfigRow(row)
}

func (s *configService) GetByReferrer(ctx context.Context, referrer string) (models.Config, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, referrer, icon_url, homepage, ads, created_at, updated_at
		FROM configs WHERE referrer = ?`, referrer)
	return scanConfigRow(row)
}

func (s *configService) Update(ctx context.Context, id string, req models.ConfigRequest) (models.Config, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Config{}, err
	}

	// 레퍼러 변경 시 다른 레코드와의 충돌 확인
	if req.Referrer != current.Referrer {
		var exists int
		if err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM configs WHERE referrer = ? AND id != ?",
			req.Referrer, id,
		).Scan(&exists); err != nil {
			return models.Config{}, err
		}
		if exists > 0 {
			return models.Config{}, ErrReferrerConflict
		}
	}

	adsJSON, err := marshalAds(req.Ads)
	if err != nil {
		return models.Config{}, err
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	_, err = s.db.ExecContext(ctx, `
		UPDATE configs
		SET referrer = ?, icon_url = ?, homepage = ?, ads = ?, updated_at = ?
		WHERE id = ?`,
		req.Referrer, req.IconURL, req.Homepage, adsJSON, now, id,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.Config{}, ErrReferrerConflict
		}
		return models.Config{}, err
	}

	current.Referrer = req.Referrer
	current.IconURL = req.IconURL
	current.Homepage = req.Homepage
	current.Ads = normalizeAds(req.Ads)
	current.UpdatedAt = now
	return current, nil
}

// Delete는 레코드를 삭제하고, 파일 정리를 위해 삭제된 레코드를 반환합니다.
func (s *configService) Delete(ctx context.Context, id string) (models.Config, error) {
	config, err := s.Get(ctx, id)
	if err != nil {
		return models.Config{}, err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM configs WHERE id = ?", id)
	if err != nil {
		return models.Config{}, err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.Config{}, ErrConfigNotFound
	}

	return config, nil
}

// ReferencedAssets는 모든 설정이 참조하는 업로드 경로 집합을 반환합니다.
// 고아 파일 정리 스케줄러가 사용합니다.
func (s *configService) ReferencedAssets(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT icon_url, ads FROM configs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make(map[string]struct{})
	for rows.Next() {
		var iconURL, adsJSON string
		if err := rows.Scan(&iconURL, &adsJSON); err != nil {
			return nil, err
		}
		refs[iconURL] = struct{}{}
		var ads []string
		if err := json.Unmarshal([]byte(adsJSON), &ads); err == nil {
			for _, ad := range ads {
				refs[ad] = struct{}{}
			}
		}
	}

	return refs, rows.Err()
}

func marshalAds(ads []string) (string, error) {
	data, err := json.Marshal(normalizeAds(ads))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func normalizeAds(ads []string) []string {
	if ads == nil {
		return []string{}
	}
	return ads
}

func scanConfig(scan func(dest ...any) error) (models.Config, error) {
	var (
		config  models.Config
		adsJSON string
	)
	if err := scan(&config.ID, &config.Referrer, &config.IconURL, &config.Homepage, &adsJSON, &config.CreatedAt, &config.UpdatedAt); err != nil {
		return models.Config{}, err
	}
	if err := json.Unmarshal([]byte(adsJSON), &config.Ads); err != nil || config.Ads == nil {
		config.Ads = []string{}
	}
	return config, nil
}

func scanConfigRow(row *sql.Row) (models.Config, error) {
	config, err := scanConfig(row.Scan)
	if err == sql.ErrNoRows {
		return models.Config{}, ErrConfigNotFound
	}
	if err != nil {
		return models.Config{}, err
	}
	return config, nil
}
