package db

import (
	"log"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/config"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
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
		&models.Lead{},
		&models.NewsletterSubscriber{},
		&models.ConsultationSlot{},
		&models.Booking{},
		&models.Payment{},
		&models.WebhookEvent{},
		&models.Service{},
		&models.BlogPost{},
		&models.CaseStudy{},
		&models.MediaFile{},
		&models.SiteSettings{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
