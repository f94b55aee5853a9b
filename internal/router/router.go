package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "rapidbill/docs"
	"rapidbill/internal/handler"
	"rapidbill/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	invoiceH *handler.InvoiceHandler,
	productH *handler.ProductHandler,
	customerH *handler.CustomerHandler,
	searchH *handler.SearchHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Invoice routes. Export and preview are registered before the :id
	// wildcard so gin does not treat them as identifiers.
	invoices := v1.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/export", invoiceH.ExportCSV)
	invoices.POST("/preview", invoiceH.Preview)
	invoices.POST("/smart-entry", invoiceH.SmartEntry)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.POST("/:id/payments", invoiceH.RecordPayment)

	// Catalog routes
	products := v1.Group("/products")
	products.POST("", productH.Create)
	products.GET("", productH.List)
	products.GET("/:id", productH.GetByID)
	products.PUT("/:id", productH.Update)
	products.DELETE("/:id", productH.Delete)

	// Customer routes
	customers := v1.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.GetByID)
	customers.PUT("/:id", customerH.Update)
	customers.GET("/:id/invoices", customerH.ListInvoices)
	customers.GET("/:id/last-price/:productId", customerH.LastSalePrice)

	// Search routes
	search := v1.Group("/search")
	search.GET("/products", searchH.Products)
	search.GET("/customers", searchH.Customers)

	return r
}
