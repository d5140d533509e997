package database

import (
	"fmt"
	"log"

	"github.com/siamtrans/backoffice-api/internal/config"
	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Registry entities
		&entity.Customer{},
		&entity.Driver{},
		&entity.Vehicle{},

		// Financial documents
		&entity.Document{},
		&entity.DocumentItem{},
		&entity.PaymentVoucher{},
		&entity.PaymentVoucherItem{},

		// System entities
		&entity.CompanyInfo{},
		&entity.ClientBlob{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the company info row from environment variables
// when the table is still empty. Existing data is never overwritten.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.CompanyInfo{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check company info: %w", err)
	}
	if count > 0 {
		return nil
	}

	companyName := viper.GetString("COMPANY_NAME")
	if companyName == "" {
		return nil
	}

	optional := func(key string) *string {
		if v := viper.GetString(key); v != "" {
			return &v
		}
		return nil
	}

	info := entity.CompanyInfo{
		Name:    companyName,
		Address: optional("COMPANY_ADDRESS"),
		TaxID:   optional("COMPANY_TAX_ID"),
		Phone:   optional("COMPANY_PHONE"),
		Email:   optional("COMPANY_EMAIL"),
	}
	if err := db.Create(&info).Error; err != nil {
		return fmt.Errorf("failed to seed company info: %w", err)
	}

	log.Printf("Company info seeded: %s", companyName)
	return nil
}
