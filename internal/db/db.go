package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brightsprout/childcare-api/internal/config"
	"github.com/brightsprout/childcare-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// Surfaces unique violations as gorm.ErrDuplicatedKey so the
		// repository can translate them.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.Child{},
		&models.Attendance{},
		&models.Billing{},
		&models.HealthRecord{},
		&models.Activity{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
