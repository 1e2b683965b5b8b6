package main

import (
	"context"

	authsvc "meta_content/internal/api/auth/service"
	"meta_content/internal/global"
	"meta_content/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống.
// Tất cả các bước đều idempotent nên restart server không tạo dữ liệu trùng.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	initService, err := authsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	ctx := context.Background()

	// 1. Khởi tạo catalogue permission theo lưới module:action
	if err := initService.InitPermissions(ctx); err != nil {
		log.Fatalf("Failed to initialize permissions: %v", err)
	}

	// 2. Tạo role Super Admin và đồng bộ toàn bộ permission cho nó
	superAdminRole, err := initService.InitSuperAdminRole(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Super Admin role: %v", err)
	}

	// 3. Tạo role Member mặc định cho user đăng ký mới
	if _, err := initService.InitDefaultRole(ctx); err != nil {
		log.Fatalf("Failed to initialize default role: %v", err)
	}

	// 4. Tạo user admin từ env (tùy chọn)
	cfg := global.MongoDB_ServerConfig
	if err := initService.InitAdminUser(ctx, cfg.AdminEmail, cfg.AdminPassword, superAdminRole.ID); err != nil {
		log.Warnf("Failed to initialize admin user: %v", err)
	}

	log.Info("InitDefaultData completed successfully")
}
