package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"browserconfig/database"
	_ "browserconfig/docs" // Swagger 문서
	"browserconfig/handlers"
	"browserconfig/logger"
	"browserconfig/middleware"
	"browserconfig/models"
	"browserconfig/scheduler"
	"browserconfig/services"
	"browserconfig/utils"

	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	configHTTPHandler       *handlers.ConfigHandler
	publicConfigHTTPHandler *handlers.PublicConfigHandler
)

// @title Browser Config Server API
// @version 1.0
// @description 레퍼러별 브라우저 설정 배포 및 관리 서버
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT 토큰을 입력하세요. 형식: Bearer {token}

func main() {
	// 로거 초기화
	logConfig := logger.Config{
		Level:    logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		LogDir:   "./logs",
		MaxAge:   7, // 7일
		UseColor: true,
	}

	if err := logger.Initialize(logConfig); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}

	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Info("🚀 Browser Config Server Starting")
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	// JWT 시크릿은 환경변수로만 주입한다. 미설정 시 기동 실패.
	if err := utils.InitJWT(os.Getenv("JWT_SECRET")); err != nil {
		logger.Fatal("Failed to initialize JWT: %v", err)
	}

	// 데이터베이스 초기화 (기본: SQLite)
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./browserconfig.db"
	}
	if err := database.Initialize(dbType, dbPath); err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// 업로드 디렉터리 준비
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		utils.UploadDir = dir
	}
	if err := utils.EnsureUploadDir(); err != nil {
		logger.Fatal("Failed to create upload directory: %v", err)
	}

	// 서비스 계층 초기화
	sqlExecutor := services.NewSQLExecutor(database.DB)
	configService := services.NewConfigService(sqlExecutor)

	configHTTPHandler = handlers.NewConfigHandler(configService)
	publicConfigHTTPHandler = handlers.NewPublicConfigHandler(configService)

	// 스케줄러 시작 (미사용 업로드 파일 자동 정리)
	scheduler.StartScheduler(configService)

	// 라우터 설정
	mux := http.NewServeMux()

	// 업로드 파일 정적 서빙
	uploads := http.FileServer(http.Dir(utils.UploadDir))
	mux.Handle(utils.UploadURLPrefix, http.StripPrefix(utils.UploadURLPrefix, uploads))

	// Swagger 문서
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Public 엔드포인트
	mux.HandleFunc("/", homeHandler)
	mux.HandleFunc("/health", healthHandler)

	// 클라이언트 API (인증 불필요)
	mux.HandleFunc("/api/config",
		middleware.ChainMiddleware(
			publicConfigHTTPHandler.Get,
			middleware.LoggingMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	mux.HandleFunc("/api/register-install",
		middleware.ChainMiddleware(
			handlers.RegisterInstall,
			middleware.LoggingMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	// 인증 API (관리자)
	mux.HandleFunc("/api/auth/login",
		middleware.ChainMiddleware(
			handlers.Login,
			middleware.LoggingMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	// 관리자 API (인증 필요)
	mux.HandleFunc("/api/admin/me",
		middleware.ChainMiddleware(
			handlers.GetMe,
			middleware.LoggingMiddleware,
			middleware.AuthMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	// 설정 관리 API
	mux.HandleFunc("/api/admin/config",
		middleware.ChainMiddleware(
			configHandler,
			middleware.LoggingMiddleware,
			middleware.AuthMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	mux.HandleFunc("/api/admin/config/",
		middleware.ChainMiddleware(
			configDetailHandler,
			middleware.LoggingMiddleware,
			middleware.AuthMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	// 설치 관리 API
	mux.HandleFunc("/api/admin/installs",
		middleware.ChainMiddleware(
			installHandler,
			middleware.LoggingMiddleware,
			middleware.AuthMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	// 관리자 계정 관리 API
	mux.HandleFunc("/api/admin/users",
		middleware.ChainMiddleware(
			adminUserHandler,
			middleware.LoggingMiddleware,
			middleware.AuthMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	// 활동 로그 API
	mux.HandleFunc("/api/admin/activities",
		middleware.ChainMiddleware(
			handlers.ListActivities,
			middleware.LoggingMiddleware,
			middleware.AuthMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	// 파일 업로드 API (인증 필요)
	mux.HandleFunc("/api/upload",
		middleware.ChainMiddleware(
			uploadHandler,
			middleware.LoggingMiddleware,
			middleware.AuthMiddleware,
			middleware.CORSMiddleware,
			middleware.SetJSONHeader,
		))

	// 서버 설정
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown 설정
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Warn("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error: %v", err)
		}
		database.Close()
		os.Exit(0)
	}()

	logger.Info("Server listening on http://localhost%s", addr)
	logger.Info("Swagger UI: http://localhost%s/swagger/index.html", addr)
	logger.Info("Log directory: ./logs")
	logger.Info("Database: %s - %s", dbType, dbPath)
	logger.Info("Upload directory: %s", utils.UploadDir)
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed to start: %v", err)
	}
}

// homeHandler 루트 핸들러
func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"success","message":"Browser Config Server","version":"1.0.0"}`))
}

// healthHandler 헬스체크 핸들러
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"success","message":"Server is healthy"}`))
}

// configHandler 설정 목록/생성 핸들러
func configHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		configHTTPHandler.List(w, r)
	case http.MethodPost:
		configHTTPHandler.Create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// configDetailHandler 설정 상세/수정/삭제 핸들러
func configDetailHandler(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/admin/config/")
	path = strings.Trim(path, "/")
	if path == "" || strings.Contains(path, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	ctx := context.WithValue(r.Context(), "path_config_id", path)
	r = r.WithContext(ctx)

	switch r.Method {
	case http.MethodGet:
		configHTTPHandler.Get(w, r)
	case http.MethodPut:
		configHTTPHandler.Update(w, r)
	case http.MethodDelete:
		configHTTPHandler.Delete(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// installHandler 설치 목록/일괄 삭제 핸들러
func installHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		handlers.ListInstalls(w, r)
	case http.MethodDelete:
		if !middleware.EnsureRole(w, r, models.RoleSuperAdmin) {
			return
		}
		handlers.DeleteInstalls(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// adminUserHandler 관리자 계정 목록/생성 핸들러
func adminUserHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		handlers.ListAdmins(w, r)
	case http.MethodPost:
		if !middleware.EnsureRole(w, r, models.RoleSuperAdmin) {
			return
		}
		handlers.CreateAdmin(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// uploadHandler 파일 업로드 핸들러
func uploadHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		handlers.UploadFile(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
