package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siamtrans/backoffice-api/internal/config"
	domainRepo "github.com/siamtrans/backoffice-api/internal/domain/repository"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/handler"
	"github.com/siamtrans/backoffice-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Quotation *handler.DocumentHandler
	Invoice   *handler.DocumentHandler
	Receipt   *handler.DocumentHandler
	Voucher   *handler.VoucherHandler
	Customer  *handler.CustomerHandler
	Driver    *handler.DriverHandler
	Vehicle   *handler.VehicleHandler
	Company   *handler.CompanyHandler
	Store     *handler.StoreHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		limitWindow := deps.Cfg.RateLimit.Duration
		if limitWindow <= 0 {
			limitWindow = 60
		}
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(limitWindow),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())
		v1.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))

		registerDocumentRoutes(v1, h)
		registerVoucherRoutes(v1, h)
		registerRegistryRoutes(v1, h)
		registerCompanyRoutes(v1, h)
		registerStoreRoutes(v1, h)
	}

	return router
}

func registerDocumentRoutes(v1 *gin.RouterGroup, h *Handlers) {
	quotations := v1.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
		quotations.POST("/:id/send", h.Quotation.Send)
		quotations.POST("/:id/approve", h.Quotation.Approve)
		quotations.POST("/:id/reject", h.Quotation.Reject)
	}

	invoices := v1.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)
	}

	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PUT("/:id", h.Receipt.Update)
		receipts.DELETE("/:id", h.Receipt.Delete)
		receipts.PATCH("/:id/status", h.Receipt.UpdateStatus)
	}
}

func registerVoucherRoutes(v1 *gin.RouterGroup, h *Handlers) {
	vouchers := v1.Group("/payment-vouchers")
	{
		vouchers.GET("", h.Voucher.List)
		vouchers.POST("", h.Voucher.Create)
		vouchers.GET("/:id", h.Voucher.Get)
		vouchers.PUT("/:id", h.Voucher.Update)
		vouchers.DELETE("/:id", h.Voucher.Delete)
	}
}

func registerRegistryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	drivers := v1.Group("/drivers")
	{
		drivers.GET("", h.Driver.List)
		drivers.POST("", h.Driver.Create)
		drivers.GET("/:id", h.Driver.Get)
		drivers.PUT("/:id", h.Driver.Update)
		drivers.DELETE("/:id", h.Driver.Delete)
	}

	vehicles := v1.Group("/vehicles")
	{
		vehicles.GET("", h.Vehicle.List)
		vehicles.POST("", h.Vehicle.Create)
		vehicles.GET("/:id", h.Vehicle.Get)
		vehicles.PUT("/:id", h.Vehicle.Update)
		vehicles.DELETE("/:id", h.Vehicle.Delete)
	}
}

func registerCompanyRoutes(v1 *gin.RouterGroup, h *Handlers) {
	company := v1.Group("/company")
	{
		company.GET("", h.Company.Get)
		company.PUT("", h.Company.Save)
	}
}

func registerStoreRoutes(v1 *gin.RouterGroup, h *Handlers) {
	store := v1.Group("/store")
	{
		store.GET("/:key", h.Store.Get)
		store.PUT("/:key", h.Store.Set)
		store.DELETE("/:key", h.Store.Remove)
	}
}
