package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"browserconfig/logger"

	"golang.org/x/crypto/bcrypt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

var DB *sql.DB
var dbType string

// Initialize 데이터베이스 초기화
// t: "sqlite" 또는 "mysql"
// dbPath: SQLite 파일 경로 또는 MySQL DSN
func Initialize(t, dbPath string) error {
	var err error

	if t == "" {
		t = "sqlite"
	}
	if dbPath == "" && t == "sqlite" {
		dbPath = "./browserconfig.db"
	}

	dbType = t

	DB, err = sql.Open(dbType, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := createDefaultAdmin(); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.Info("Database initialized successfully")
	return nil
}

// createTables 테이블 생성
func createTables() error {
	tables := []string{
		// 관리자 테이블
		`CREATE TABLE IF NOT EXISTS admins (
			id VARCHAR(50) PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'admin',
			created_at VARCHAR(50) NOT NULL DEFAULT '',
			updated_at VARCHAR(50) NOT NULL DEFAULT ''
		)`,

		// 레퍼러별 브라우저 설정 테이블 (ads는 JSON 배열 텍스트)
		`CREATE TABLE IF NOT EXISTS configs (
			id VARCHAR(50) PRIMARY KEY,
			referrer VARCHAR(100) UNIQUE NOT NULL,
			icon_url VARCHAR(255) NOT NULL,
			homepage VARCHAR(255) NOT NULL,
			ads TEXT NOT NULL DEFAULT '[]',
			created_at VARCHAR(50) NOT NULL DEFAULT '',
			updated_at VARCHAR(50) NOT NULL DEFAULT ''
		)`,

		// 설치 이벤트 테이블 (device_id + referrer 쌍 중복 방지)
		`CREATE TABLE IF NOT EXISTS installs (
			id VARCHAR(50) PRIMARY KEY,
			device_id VARCHAR(200) NOT NULL,
			referrer VARCHAR(100) NOT NULL,
			user_agent VARCHAR(500),
			ip_address VARCHAR(100),
			installed_at VARCHAR(50) NOT NULL DEFAULT '',
			CONSTRAINT unique_install UNIQUE (device_id, referrer)
		)`,

		// 관리자 활동 로그 테이블
		`CREATE TABLE IF NOT EXISTS admin_activity_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			admin_id VARCHAR(50) NOT NULL,
			username VARCHAR(50) NOT NULL,
			action VARCHAR(100) NOT NULL,
			details TEXT,
			created_at VARCHAR(50) NOT NULL DEFAULT ''
		)`,

		`CREATE INDEX IF NOT EXISTS idx_configs_referrer ON configs(referrer)`,
		`CREATE INDEX IF NOT EXISTS idx_configs_created ON configs(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_installs_referrer ON installs(referrer)`,
		`CREATE INDEX IF NOT EXISTS idx_installs_device ON installs(device_id)`,
		`CREATE INDEX IF NOT EXISTS idx_installs_at ON installs(installed_at)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_admin ON admin_activity_logs(admin_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_created ON admin_activity_logs(created_at)`,
	}

	for _, stmt := range tables {
		if dbType == "mysql" {
			stmt = strings.ReplaceAll(stmt, "INTEGER PRIMARY KEY AUTOINCREMENT", "BIGINT AUTO_INCREMENT PRIMARY KEY")
		}
		if _, err := DB.Exec(stmt); err != nil {
			// MySQL은 CREATE INDEX IF NOT EXISTS를 지원하지 않으므로 중복 인덱스 에러 무시
			if strings.Contains(err.Error(), "Duplicate key name") {
				continue
			}
			return fmt.Errorf("failed to execute SQL: %w", err)
		}
	}

	return nil
}

// createDefaultAdmin 기본 슈퍼 관리자 계정 생성 (admins 테이블이 비어있을 때만)
func createDefaultAdmin() error {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// utils 패키지는 database를 임포트하므로 여기서 직접 해싱
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(hashBytes)

	now := time.Now().Format("2006-01-02 15:04:05")
	_, err = DB.Exec(
		`INSERT INTO admins (id, username, password, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		"adm-default0000001", "admin", hash, "super_admin", now, now,
	)
	if err != nil {
		return err
	}

	logger.Warn("Default super admin created - username: admin, password: admin123 (change immediately)")
	return nil
}

// IsUniqueViolation 유니크 제약 위반 여부 판별 (SQLite/MySQL)
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "1062")
}

// Close 데이터베이스 연결 종료
func Close() {
	if DB != nil {
		DB.Close()
	}
}
