// file: database/connect.go
package database

import (
	"QRHunt/config"
	"QRHunt/models"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	var err error
	// TranslateError 让 MySQL 的唯一键冲突 (1062) 统一转换为 gorm.ErrDuplicatedKey，
	// 答题判重依赖这个错误作为权威信号
	DB, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// 连接池配置，ConnMaxLifetime 用于规避 MySQL 的 wait_timeout
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 自动迁移数据表。
// answers 表的 (team_id, qr_value) 唯一索引在这里建立，必须保留。
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.Team{},
		&models.Admin{},
		&models.QRCode{},
		&models.Answer{},
		&models.LocationHint{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
