// file: database/seed.go
package database

import (
	"QRHunt/config"
	"QRHunt/models"
	"log"
)

// SeedAdmin 首次启动时创建初始管理员账号。
// 已存在任意管理员则跳过；未配置 ADMIN_PASSWORD 时不创建，避免默认弱口令。
func SeedAdmin(cfg *config.Config) {
	var count int64
	if err := DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to check admin table:", err)
	}
	if count > 0 {
		return
	}

	if cfg.AdminPassword == "" {
		log.Println("No admin account exists and ADMIN_PASSWORD is not set; skipping admin seed.")
		return
	}

	admin := models.Admin{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Email:    cfg.AdminEmail,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}
	log.Printf("Seeded initial admin account %q", admin.Username)
}
