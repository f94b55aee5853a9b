package main

import (
	"fmt"
	"log"

	"rapidbill/internal/config"
	"rapidbill/internal/handler"
	"rapidbill/internal/repository/postgres"
	"rapidbill/internal/router"
	"rapidbill/internal/service"
)

// @title RapidBill API
// @version 1.0
// @description Invoice computation and rapid-entry billing API
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	productRepo := postgres.NewProductRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	sequenceRepo := postgres.NewSequenceRepo(db)

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, productRepo, sequenceRepo, cfg.Billing)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo, invoiceRepo)
	searchSvc := service.NewSearchService(productRepo, customerRepo, cfg.Billing)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	productH := handler.NewProductHandler(productSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	searchH := handler.NewSearchHandler(searchSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, invoiceH, productH, customerH, searchH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
