package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"invoicing-dashboard-backend/internal/cache"
	handler "invoicing-dashboard-backend/internal/handlers"
	"invoicing-dashboard-backend/internal/repository"
	"invoicing-dashboard-backend/internal/services/auth"
	"invoicing-dashboard-backend/internal/services/dashboard"
	"invoicing-dashboard-backend/internal/services/invoicing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, views cache.Store, viewTTL time.Duration, log *logrus.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	userRepo := repository.NewUserRepository(db)

	dashboardService := dashboard.NewDashboardService(
		invoiceRepo,
		customerRepo,
		revenueRepo,
		userRepo,
		views,
		viewTTL,
		log,
	)
	invoiceService := invoicing.NewInvoiceService(invoiceRepo, views, log)
	authService := auth.NewAuthService(dashboardService, log)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	authHandler := handler.NewAuthHandler(authService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dash := api.Group("/dashboard")
	dash.GET("/revenue", dashboardHandler.Revenue)
	dash.GET("/latest-invoices", dashboardHandler.LatestInvoices)
	dash.GET("/cards", dashboardHandler.Cards)

	invoices := api.Group("/invoices")
	{
		invoices.GET("", dashboardHandler.ListInvoices)
		invoices.GET("/pages", dashboardHandler.InvoicePages)
		invoices.GET("/:id", dashboardHandler.GetInvoice)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.POST("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
		// HTML forms can only POST
		invoices.POST("/:id/delete", invoiceHandler.Delete)
	}

	customers := api.Group("/customers")
	customers.GET("", dashboardHandler.Customers)
	customers.GET("/table", dashboardHandler.CustomersTable)

	api.POST("/auth/login", authHandler.Login)
}
