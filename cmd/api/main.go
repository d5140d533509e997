package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/siamtrans/backoffice-api/internal/application/service"
	"github.com/siamtrans/backoffice-api/internal/config"
	"github.com/siamtrans/backoffice-api/internal/domain/enum"
	"github.com/siamtrans/backoffice-api/internal/infrastructure/database"
	"github.com/siamtrans/backoffice-api/internal/infrastructure/repository"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/handler"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/routes"
	"github.com/siamtrans/backoffice-api/pkg/email"
	"github.com/siamtrans/backoffice-api/pkg/totals"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	documentItemRepo := repository.NewDocumentItemRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	voucherItemRepo := repository.NewVoucherItemRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	blobRepo := repository.NewBlobRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service when SMTP is configured
	var emailService *email.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewEmailService(email.EmailConfig{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			SMTPUsername: cfg.Email.SMTPUsername,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromName:     cfg.Email.FromName,
			FromEmail:    cfg.Email.FromEmail,
		})
	}

	// Calculator carrying the configured statutory rates
	calc := totals.Calculator{
		VATRate:  cfg.Tax.VATRate,
		LevyRate: cfg.Tax.LevyRate,
	}

	// Initialize services
	documentService := service.NewDocumentService(documentRepo, documentItemRepo, customerRepo, companyRepo, calc, emailService)
	mirrorCoordinator := service.NewMirrorCoordinator(documentService, documentRepo, documentItemRepo)
	voucherService := service.NewVoucherService(voucherRepo, voucherItemRepo, driverRepo, calc)
	customerService := service.NewCustomerService(customerRepo)
	driverService := service.NewDriverService(driverRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	companyService := service.NewCompanyService(companyRepo)
	storeService := service.NewStoreService(blobRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Quotation: handler.NewDocumentHandler(enum.DocumentTypeQuotation, documentService, mirrorCoordinator),
		Invoice:   handler.NewDocumentHandler(enum.DocumentTypeInvoice, documentService, nil),
		Receipt:   handler.NewDocumentHandler(enum.DocumentTypeReceipt, documentService, nil),
		Voucher:   handler.NewVoucherHandler(voucherService),
		Customer:  handler.NewCustomerHandler(customerService),
		Driver:    handler.NewDriverHandler(driverService),
		Vehicle:   handler.NewVehicleHandler(vehicleService),
		Company:   handler.NewCompanyHandler(companyService),
		Store:     handler.NewStoreHandler(storeService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
