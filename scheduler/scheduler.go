package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"browserconfig/logger"
	"browserconfig/services"
	"browserconfig/utils"
)

// 생성 직후의 파일은 아직 설정에 연결되기 전일 수 있으므로 정리 대상에서 제외
const orphanMinAge = 24 * time.Hour

// StartScheduler 스케줄러 시작
func StartScheduler(configService services.ConfigService) {
	logger.Info("Scheduler started")

	// 1시간마다 실행
	ticker := time.NewTicker(1 * time.Hour)

	// 서버 시작 시 즉시 한 번 실행
	CleanupOrphanAssets(configService)

	// 고루틴으로 주기적 실행
	go func() {
		for {
			<-ticker.C
			logger.Info("Scheduler tick: Running CleanupOrphanAssets")
			CleanupOrphanAssets(configService)
		}
	}()
}

// CleanupOrphanAssets 어떤 설정에서도 참조되지 않는 업로드 파일 정리
func CleanupOrphanAssets(configService services.ConfigService) {
	logger.Info("Running scheduled task: CleanupOrphanAssets")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	refs, err := configService.ReferencedAssets(ctx)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Failed to load referenced assets")
		return
	}

	entries, err := os.ReadDir(utils.UploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		logger.WithFields(map[string]interface{}{
			"error": err.Error(),
			"dir":   utils.UploadDir,
		}).Error("Failed to read upload directory")
		return
	}

	cutoff := time.Now().Add(-orphanMinAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		url := utils.UploadURLPrefix + entry.Name()
		if _, ok := refs[url]; ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(utils.UploadDir, entry.Name())); err != nil {
			logger.WithFields(map[string]interface{}{
				"error": err.Error(),
				"file":  entry.Name(),
			}).Warn("Failed to remove orphan asset")
			continue
		}

		logger.WithFields(map[string]interface{}{
			"file": entry.Name(),
		}).Info("Removed orphan asset")
		removed++
	}

	if removed > 0 {
		details := fmt.Sprintf("자동으로 %d개의 미사용 업로드 파일이 정리되었습니다.", removed)
		utils.LogAdminActivity("system", "System", "고아 파일 정리", details)
	}

	logger.WithFields(map[string]interface{}{
		"removed": removed,
	}).Info("Orphan asset cleanup finished")
}
